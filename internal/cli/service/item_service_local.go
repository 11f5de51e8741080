package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Sekkrit/internal/cli/crypto"
	"Sekkrit/internal/cli/model"
	view "Sekkrit/internal/cli/model/view"
	"Sekkrit/internal/cli/repo"
	"Sekkrit/internal/detail"
	"Sekkrit/internal/secret"
)

// ItemServiceLocal — локальная реализация ItemService.
// В лог попадают только ID записей, категории и виды ошибок, но не значения.
type ItemServiceLocal struct {
	repo   repo.ItemRepository
	key    []byte
	logger *zap.SugaredLogger
}

// NewItemServiceLocal создаёт новый сервис работы с items поверх переданного репозитория
// и ключа профиля. logger может быть nil.
func NewItemServiceLocal(r repo.ItemRepository, key []byte, logger *zap.SugaredLogger) ItemService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemServiceLocal{repo: r, key: key, logger: logger}
}

// errorKind сводит ошибку к безопасной для логов метке.
func errorKind(err error) string {
	var de *detail.DecodeError
	if errors.As(err, &de) {
		return de.Kind()
	}
	return "internal"
}

// Add создаёт запись: валидирует категорию и деталь, шифрует деталь с привязкой к ID записи
// и сохраняет через репозиторий.
func (s *ItemServiceLocal) Add(title string, category detail.Category, folder string, detailJSON []byte) (string, error) {
	if err := category.Validate(); err != nil {
		s.logger.Warnw("category rejected", "category", string(category))
		return "", err
	}
	id := uuid.NewString()
	var cipher, nonce []byte
	if detailJSON != nil {
		if _, err := detail.DecodeDetail(category, detailJSON); err != nil {
			s.logger.Warnw("detail rejected", "category", string(category), "error_kind", errorKind(err))
			return "", err
		}
		c, n, err := crypto.Encrypt(detailJSON, s.key, []byte(id))
		if err != nil {
			return "", fmt.Errorf("encrypt detail: %w", err)
		}
		cipher, nonce = c, n
	}
	id, err := s.repo.AddEncrypted(id, title, category, folder, cipher, nonce)
	if err != nil {
		s.logger.Errorw("add item failed", "category", string(category), "error", err)
		return "", err
	}
	s.logger.Infow("item added", "item_id", id, "category", string(category), "has_detail", cipher != nil)
	return id, nil
}

// List возвращает список элементов профиля.
func (s *ItemServiceLocal) List(folder string) ([]model.Item, error) {
	return s.repo.ListItems(folder)
}

// find ищет запись по заголовку, а если такого нет и ref похож на UUID — по ID.
func (s *ItemServiceLocal) find(ref string) (*model.Item, error) {
	it, err := s.repo.GetItemByTitle(ref)
	if errors.Is(err, repo.ErrItemNotFound) && uuid.Validate(ref) == nil {
		return s.repo.GetItemByID(ref)
	}
	return it, err
}

// load читает запись и декодирует её деталь.
func (s *ItemServiceLocal) load(ref string) (*model.Item, detail.Detail, error) {
	it, err := s.find(ref)
	if err != nil {
		return nil, nil, err
	}
	if !it.HasDetail() {
		return it, nil, fmt.Errorf("%w: %q", ErrNoDetail, it.Title)
	}
	plain, err := crypto.Decrypt(it.DetailCipher, it.DetailNonce, s.key, []byte(it.ID))
	if err != nil {
		s.logger.Errorw("decrypt detail failed", "item_id", it.ID)
		return nil, nil, fmt.Errorf("decrypt detail: %w", err)
	}
	d, err := detail.DecodeDetail(it.Category, plain)
	if err != nil {
		s.logger.Errorw("stored detail does not decode", "item_id", it.ID, "error_kind", errorKind(err))
		return nil, nil, err
	}
	return it, d, nil
}

// Show возвращает представление детали с замаскированными секретами.
func (s *ItemServiceLocal) Show(ref string) (*view.DetailView, error) {
	it, d, err := s.load(ref)
	if err != nil {
		return nil, err
	}
	v := view.Build(it.Category, d)
	v.ID, v.Title, v.Trashed = it.ID, it.Title, it.Trashed
	return &v, nil
}

// Secret выбирает строку по номеру или метке и возвращает её секрет.
func (s *ItemServiceLocal) Secret(ref, row string) (secret.Value, error) {
	v, err := s.Show(ref)
	if err != nil {
		return secret.Value{}, err
	}
	idx := -1
	if n, err := strconv.Atoi(row); err == nil {
		idx = rowByNumber(v, n)
	} else {
		idx = findRow(v, row)
	}
	if idx < 0 {
		return secret.Value{}, fmt.Errorf("%w: %q", ErrRowNotFound, row)
	}
	r := v.Rows[idx]
	if r.Secret == nil {
		return secret.Value{}, fmt.Errorf("%w: %q", ErrNotSecret, r.Label)
	}
	s.logger.Infow("secret revealed for copy", "item_id", v.ID, "row", idx)
	return *r.Secret, nil
}

// rowByNumber переводит номер строки (с 1, заголовки секций не нумеруются) в индекс Rows.
func rowByNumber(v *view.DetailView, n int) int {
	for i, r := range v.Rows {
		if r.Heading {
			continue
		}
		n--
		if n == 0 {
			return i
		}
	}
	return -1
}

// findRow ищет строку по метке; секретные строки имеют приоритет над публичными с той же меткой.
func findRow(v *view.DetailView, label string) int {
	idx := -1
	for i, r := range v.Rows {
		if r.Heading || r.Label != label {
			continue
		}
		if r.Secret != nil {
			return i
		}
		if idx < 0 {
			idx = i
		}
	}
	return idx
}

// Edit заменяет деталь записи; категория записи не меняется.
func (s *ItemServiceLocal) Edit(ref string, detailJSON []byte) error {
	it, err := s.find(ref)
	if err != nil {
		return err
	}
	if _, err := detail.DecodeDetail(it.Category, detailJSON); err != nil {
		s.logger.Warnw("detail rejected", "item_id", it.ID, "category", string(it.Category), "error_kind", errorKind(err))
		return err
	}
	c, n, err := crypto.Encrypt(detailJSON, s.key, []byte(it.ID))
	if err != nil {
		return fmt.Errorf("encrypt detail: %w", err)
	}
	if err := s.repo.UpdateDetail(it.Title, c, n); err != nil {
		return err
	}
	s.logger.Infow("item detail replaced", "item_id", it.ID)
	return nil
}

// Trash перемещает запись в корзину.
func (s *ItemServiceLocal) Trash(ref string) error {
	it, err := s.find(ref)
	if err != nil {
		return err
	}
	if err := s.repo.Trash(it.Title); err != nil {
		return err
	}
	s.logger.Infow("item trashed", "item_id", it.ID)
	return nil
}
