package bootstrap

import (
	"fmt"
	"path/filepath"

	"Sekkrit/internal/cli/crypto"
	"Sekkrit/internal/cli/repo"
	fsrepo "Sekkrit/internal/cli/repo/fs"
	reposqlite "Sekkrit/internal/cli/repo/sqlite"
)

// DefaultProfile используется, когда профиль не задан ни флагом, ни сохранённым значением.
const DefaultProfile = "default"

// ResolveProfile выбирает профиль: явный, затем сохранённый активный, затем DefaultProfile.
func ResolveProfile(profile string) string {
	if profile != "" {
		return profile
	}
	if p, err := (fsrepo.ClientFSStore{}).LoadProfile(); err == nil {
		return p
	}
	return DefaultProfile
}

// OpenItemRepo открывает репозиторий items профиля, выполняет миграции, проверяет
// мастер-пароль и возвращает (repo, key, cleanup, error).
// cleanup необходимо вызвать после окончания работы с репозиторием: он закрывает БД и затирает ключ.
func OpenItemRepo(baseDir, profile string, password []byte) (repo.ItemRepository, []byte, func() error, error) {
	r, dbPath, err := reposqlite.OpenForProfile(baseDir, ResolveProfile(profile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open profile db: %w", err)
	}
	key, err := crypto.UnlockProfile(filepath.Dir(dbPath), password)
	if err != nil {
		_ = r.Close()
		return nil, nil, nil, fmt.Errorf("unlock profile: %w", err)
	}
	if err := r.Migrate(); err != nil {
		crypto.Wipe(key)
		_ = r.Close()
		return nil, nil, nil, fmt.Errorf("migrate profile db: %w", err)
	}
	cleanup := func() error {
		crypto.Wipe(key)
		return r.Close()
	}
	return r, key, cleanup, nil
}

// InitProfile создаёт новый профиль: БД со схемой и ключевой материал.
// Возвращает путь к БД. Профиль запоминается как активный.
func InitProfile(baseDir, profile string, password []byte) (string, error) {
	profile = ResolveProfile(profile)
	r, dbPath, err := reposqlite.OpenForProfile(baseDir, profile)
	if err != nil {
		return "", fmt.Errorf("open profile db: %w", err)
	}
	defer r.Close()
	key, err := crypto.InitProfile(filepath.Dir(dbPath), password)
	if err != nil {
		return "", fmt.Errorf("init profile: %w", err)
	}
	crypto.Wipe(key)
	if err := r.Migrate(); err != nil {
		return "", fmt.Errorf("migrate profile db: %w", err)
	}
	if err := (fsrepo.ClientFSStore{}).SaveProfile(profile); err != nil {
		return "", fmt.Errorf("save active profile: %w", err)
	}
	return dbPath, nil
}
