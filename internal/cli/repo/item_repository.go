package repo

import (
	"errors"

	"Sekkrit/internal/cli/model"
	"Sekkrit/internal/detail"
)

var (
	// ErrItemNotFound возвращается, когда запись с указанным заголовком/ID отсутствует.
	ErrItemNotFound = errors.New("item not found")
	// ErrTitleTaken возвращается при попытке создать вторую запись с тем же заголовком.
	ErrTitleTaken = errors.New("title already taken")
)

// ItemRepository определяет порт доступа к локальному хранилищу элементов.
type ItemRepository interface {
	// AddEncrypted добавляет запись, принимая уже зашифрованную деталь (или nil).
	// id задаёт вызывающий (деталь шифруется с привязкой к нему); пустой id генерируется.
	// Возвращает ID созданной записи.
	AddEncrypted(id, title string, category detail.Category, folder string, detailCipher, detailNonce []byte) (string, error)

	// ListItems возвращает записи папки (пустая строка - все), без удалённых в корзину.
	ListItems(folder string) ([]model.Item, error)

	// GetItemByTitle находит запись по точному заголовку.
	GetItemByTitle(title string) (*model.Item, error)

	// GetItemByID находит запись по ID.
	GetItemByID(id string) (*model.Item, error)

	// UpdateDetail заменяет зашифрованную деталь записи.
	UpdateDetail(title string, detailCipher, detailNonce []byte) error

	// Trash помечает запись удалённой в корзину.
	Trash(title string) error
}
