package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"Sekkrit/internal/cli/repo"
)

// ClientFSStore — файловое хранилище API-токена и активного профиля для CLI.
type ClientFSStore struct{}

var (
	_ repo.TokenStore   = ClientFSStore{}
	_ repo.ProfileStore = ClientFSStore{}
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "Sekkrit")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func filePath(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func tokenPath() (string, error)   { return filePath("api_token") }
func profilePath() (string, error) { return filePath("active_profile") }

// readTrimmed читает файл и обрезает завершающие переводы строки/пробелы.
func readTrimmed(p, what string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	s := strings.TrimRight(string(b), " \t\r\n")
	if s == "" {
		return "", errors.New("empty " + what + " file")
	}
	return s, nil
}

// Save сохраняет API-токен в файл.
func (ClientFSStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает API-токен из файла.
func (ClientFSStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "token")
}

// SaveProfile запоминает активный профиль.
func (ClientFSStore) SaveProfile(profile string) error {
	if profile == "" {
		return errors.New("empty profile")
	}
	p, err := profilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(profile), 0o600)
}

// LoadProfile читает активный профиль.
func (ClientFSStore) LoadProfile() (string, error) {
	p, err := profilePath()
	if err != nil {
		return "", err
	}
	return readTrimmed(p, "profile")
}
