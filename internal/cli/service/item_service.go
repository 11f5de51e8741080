package service

import (
	"errors"

	"Sekkrit/internal/cli/model"
	view "Sekkrit/internal/cli/model/view"
	"Sekkrit/internal/detail"
	"Sekkrit/internal/secret"
)

var (
	// ErrNoDetail — у записи нет сохранённой детали. Это не ошибка декодирования.
	ErrNoDetail = errors.New("item has no detail")
	// ErrRowNotFound — строка с указанным номером/меткой отсутствует.
	ErrRowNotFound = errors.New("row not found")
	// ErrNotSecret — выбранная строка публичная, копировать нечего.
	ErrNotSecret = errors.New("row is not a secret")
)

// ItemService описывает юзкейс-уровень работы с локальными записями (items) для CLI.
type ItemService interface {
	// Add проверяет деталь декодером категории, шифрует и сохраняет запись. detailJSON может быть nil.
	// Возвращает ID.
	Add(title string, category detail.Category, folder string, detailJSON []byte) (string, error)

	// List возвращает записи папки без расшифровки (пустая папка - все).
	List(folder string) ([]model.Item, error)

	// Show расшифровывает и классифицирует деталь записи. ref — заголовок или ID.
	Show(ref string) (*view.DetailView, error)

	// Edit заменяет деталь записи. Новая деталь проверяется декодером категории записи.
	Edit(ref string, detailJSON []byte) error

	// Secret возвращает секрет строки, выбранной номером (с 1, как в Show) или меткой.
	Secret(ref, row string) (secret.Value, error)

	// Trash перемещает запись в корзину.
	Trash(ref string) error
}
