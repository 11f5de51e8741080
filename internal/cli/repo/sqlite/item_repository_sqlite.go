package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"Sekkrit/internal/cli/model"
	"Sekkrit/internal/cli/repo"
	"Sekkrit/internal/detail"
)

// ItemRepositorySQLite — репозиторий для работы с items (локальная БД SQLite).
type ItemRepositorySQLite struct {
	db      *sql.DB
	profile string
}

var _ repo.ItemRepository = (*ItemRepositorySQLite)(nil)

// DefaultBaseDir — каталог профилей по умолчанию внутри пользовательского конфига.
func DefaultBaseDir() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "Sekkrit", "profiles"), nil
}

// OpenForProfile открывает (и создаёт при необходимости) файл БД профиля в каталоге base
// и возвращает репозиторий. Вторым значением возвращается путь к БД.
// Пустой base означает DefaultBaseDir.
func OpenForProfile(base, profile string) (*ItemRepositorySQLite, string, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, "", err
	}
	if base == "" {
		var err error
		if base, err = DefaultBaseDir(); err != nil {
			return nil, "", err
		}
	}
	dir := filepath.Join(base, profile)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "items.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	// SQLite не любит параллельных писателей, CLI однопользовательский
	db.SetMaxOpenConns(1)
	return &ItemRepositorySQLite{db: db, profile: profile}, dbPath, nil
}

// Close закрывает соединение с БД.
func (r *ItemRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (r *ItemRepositorySQLite) Migrate() error {
	_, err := r.db.Exec(initialDDL())
	return err
}

var profileRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateProfile проверяет, что имя профиля безопасно использовать как имя каталога.
func ValidateProfile(profile string) error {
	if profile == "" {
		return errors.New("profile is required")
	}
	if profile == "." || profile == ".." || !profileRe.MatchString(profile) {
		return fmt.Errorf("invalid profile: %q (allowed: letters, digits, . _ -)", profile)
	}
	return nil
}

const maxTitleLen = 200

// ValidateTitle проверяет заголовок записи: непустой, без управляющих символов.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if !utf8.ValidString(title) {
		return errors.New("title must be valid UTF-8")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return fmt.Errorf("title is longer than %d characters", maxTitleLen)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid title: %q (control characters are not allowed)", title)
		}
	}
	return nil
}

// AddEncrypted добавляет запись, принимая уже зашифрованную деталь (или nil).
func (r *ItemRepositorySQLite) AddEncrypted(id, title string, category detail.Category, folder string, detailCipher, detailNonce []byte) (string, error) {
	if err := ValidateTitle(title); err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	} else if err := uuid.Validate(id); err != nil {
		return "", fmt.Errorf("invalid item id: %w", err)
	}
	if category == "" {
		return "", errors.New("category is required")
	}
	var exists int
	err := r.db.QueryRow(`SELECT 1 FROM items WHERE title = ?`, title).Scan(&exists)
	if err == nil {
		return "", fmt.Errorf("%w: %q", repo.ErrTitleTaken, title)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	now := time.Now().Unix()
	_, err = r.db.Exec(`INSERT INTO items(
        id, title, category, folder_id, created_at, updated_at, trashed,
        detail_cipher, detail_nonce
    ) VALUES(?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		id, title, string(category), folder, now, now, detailCipher, detailNonce,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListItems возвращает записи без детали, отсортированные по updated_at DESC.
func (r *ItemRepositorySQLite) ListItems(folder string) ([]model.Item, error) {
	q := `SELECT id, title, category, folder_id, created_at, updated_at, trashed
   FROM items WHERE trashed = 0`
	var args []any
	if folder != "" {
		q += ` AND folder_id = ?`
		args = append(args, folder)
	}
	q += ` ORDER BY updated_at DESC, title`
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Item
	for rows.Next() {
		var it model.Item
		var cat string
		var trashed int
		if err := rows.Scan(&it.ID, &it.Title, &cat, &it.FolderID, &it.CreatedAt, &it.UpdatedAt, &trashed); err != nil {
			return nil, err
		}
		it.Category = detail.Category(cat)
		it.Trashed = trashed != 0
		res = append(res, it)
	}
	return res, rows.Err()
}

const selectItem = `SELECT id, title, category, folder_id, created_at, updated_at, trashed,
     detail_cipher, detail_nonce
   FROM items `

func scanItem(row *sql.Row) (*model.Item, error) {
	var it model.Item
	var cat string
	var trashed int
	err := row.Scan(&it.ID, &it.Title, &cat, &it.FolderID, &it.CreatedAt, &it.UpdatedAt, &trashed,
		&it.DetailCipher, &it.DetailNonce)
	if err != nil {
		return nil, err
	}
	it.Category = detail.Category(cat)
	it.Trashed = trashed != 0
	return &it, nil
}

// GetItemByTitle возвращает запись по точному заголовку.
func (r *ItemRepositorySQLite) GetItemByTitle(title string) (*model.Item, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	it, err := scanItem(r.db.QueryRow(selectItem+`WHERE title = ?`, title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: title %q", repo.ErrItemNotFound, title)
		}
		return nil, err
	}
	return it, nil
}

// GetItemByID возвращает запись по ID.
func (r *ItemRepositorySQLite) GetItemByID(id string) (*model.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", id, err)
	}
	it, err := scanItem(r.db.QueryRow(selectItem+`WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", repo.ErrItemNotFound, id)
		}
		return nil, err
	}
	return it, nil
}

// updateByTitle выполняет UPDATE по заголовку и превращает 0 затронутых строк в ErrItemNotFound.
func (r *ItemRepositorySQLite) updateByTitle(title, set string, args ...any) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	now := time.Now().Unix()
	args = append(args, now, title)
	res, err := r.db.Exec(`UPDATE items SET `+set+`, updated_at = ? WHERE title = ?`, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: title %q", repo.ErrItemNotFound, title)
	}
	return nil
}

// UpdateDetail заменяет зашифрованную деталь записи.
func (r *ItemRepositorySQLite) UpdateDetail(title string, detailCipher, detailNonce []byte) error {
	return r.updateByTitle(title, `detail_cipher = ?, detail_nonce = ?`, detailCipher, detailNonce)
}

// Trash помечает запись удалённой. Повторный вызов не ошибка.
func (r *ItemRepositorySQLite) Trash(title string) error {
	return r.updateByTitle(title, `trashed = 1`)
}
