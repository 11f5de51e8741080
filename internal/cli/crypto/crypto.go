package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

const (
	saltLen      = 16
	saltFile     = "salt.bin"
	verifierFile = "verifier.bin"
)

// Параметры argon2id (RFC 9106, второй рекомендованный набор).
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

// verifierPlain шифруется ключом профиля при init; успешная расшифровка подтверждает мастер-пароль.
var verifierPlain = []byte("sekkrit-profile-v1")

var (
	ErrWrongPassword      = errors.New("wrong master password")
	ErrNotInitialized     = errors.New("profile is not initialized")
	ErrAlreadyInitialized = errors.New("profile is already initialized")
	ErrEmptyPassword      = errors.New("empty master password")
)

// LoadOrCreateSalt загружает соль профиля из dir или создаёт новую случайную.
func LoadOrCreateSalt(dir string) ([]byte, error) {
	if dir == "" {
		return nil, errors.New("empty profile dir for salt")
	}
	path := filepath.Join(dir, saltFile)
	if b, err := os.ReadFile(path); err == nil {
		if len(b) != saltLen {
			return nil, errors.New("invalid salt length")
		}
		return b, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	// записываем с ограниченными правами доступа
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey выводит ключ AES‑256 из мастер-пароля и соли (argon2id).
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) != saltLen {
		return nil, errors.New("invalid salt length")
	}
	return argon2.IDKey(password, salt, kdfTime, kdfMemory, kdfThreads, keyLen), nil
}

// IsInitialized сообщает, создан ли уже профиль в dir.
func IsInitialized(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, verifierFile))
	return err == nil
}

// InitProfile создаёт соль и проверочный блок профиля и возвращает ключ.
func InitProfile(dir string, password []byte) ([]byte, error) {
	if IsInitialized(dir) {
		return nil, ErrAlreadyInitialized
	}
	salt, err := LoadOrCreateSalt(dir)
	if err != nil {
		return nil, err
	}
	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	ct, nonce, err := Encrypt(verifierPlain, key, nil)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, verifierFile), append(nonce, ct...), 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// UnlockProfile выводит ключ и проверяет его по проверочному блоку профиля.
func UnlockProfile(dir string, password []byte) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(dir, verifierFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	salt, err := LoadOrCreateSalt(dir)
	if err != nil {
		return nil, err
	}
	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	const nonceLen = 12 // стандартный nonce GCM
	if len(b) <= nonceLen {
		return nil, fmt.Errorf("corrupted %s", verifierFile)
	}
	if _, err := Decrypt(b[nonceLen:], b[:nonceLen], key, nil); err != nil {
		return nil, ErrWrongPassword
	}
	return key, nil
}

// Encrypt шифрует данные plain с помощью AES‑GCM и заданного ключа.
// Возвращает шифртекст и nonce.
// aad привязывает шифртекст к владельцу (для детали - ID записи) и должен совпасть при Decrypt.
func Encrypt(plain, key, aad []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	out := gcm.Seal(nil, nonce, plain, aad)
	return out, nonce, nil
}

// Decrypt расшифровывает шифртекст cipher с использованием AES‑GCM, ключа и nonce.
func Decrypt(ciphertext, nonce, key, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, errors.New("invalid nonce size")
	}
	return gcm.Open(nil, nonce, ciphertext, aad)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Wipe затирает ключ в памяти после использования.
func Wipe(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
