package view

import (
	"Sekkrit/internal/classify"
	"Sekkrit/internal/detail"
)

// DetailView — DTO для отображения записи в CLI. Секреты лежат в Rows замаскированными.
type DetailView struct {
	ID        string
	Title     string
	Category  detail.Category
	Icon      string
	Trashed   bool
	HasDetail bool

	// Отображаемые строки в порядке документа
	Rows []classify.Row
}

// Build собирает представление расшифрованной детали. d может быть nil, если детали нет.
func Build(c detail.Category, d detail.Detail) DetailView {
	v := DetailView{Category: c, Icon: c.Icon()}
	if d == nil {
		return v
	}
	v.HasDetail = true
	v.Rows = classify.Rows(d)
	return v
}

// Secrets возвращает только замаскированные строки.
func (v DetailView) Secrets() []classify.Row {
	var out []classify.Row
	for _, r := range v.Rows {
		if r.Secret != nil {
			out = append(out, r)
		}
	}
	return out
}
