package model

import "Sekkrit/internal/detail"

// Item - base item model.
type Item struct {
	ID           string
	Title        string
	Category     detail.Category
	FolderID     string // пустая строка - корень
	CreatedAt    int64
	UpdatedAt    int64
	Trashed      bool
	DetailCipher []byte // шифртекст JSON детали; nil, если деталь не сохранена
	DetailNonce  []byte // nonce для детали
}

// HasDetail сообщает, сохранена ли у записи зашифрованная деталь.
func (it Item) HasDetail() bool { return len(it.DetailCipher) > 0 }
