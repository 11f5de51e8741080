package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"Sekkrit/internal/classify"
	"Sekkrit/internal/config"
	"Sekkrit/internal/secret"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/профиль/база) создавались в temp.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	db := filepath.Join(dir, "db")
	_ = os.MkdirAll(db, 0o700)
	return &config.Config{
		ClientDBPath:   db,
		MasterPassword: "correct horse",
		AuthSecret:     "test-secret",
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func withFakeClipboard(t *testing.T) *fakeClipboard {
	t.Helper()
	old := Clipboard
	cb := &fakeClipboard{}
	Clipboard = cb
	t.Cleanup(func() { Clipboard = old })
	return cb
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadDetail_FileStdinAndComments(t *testing.T) {
	p := writeFile(t, "d.jsonc", "{\n  // comment\n  \"password\": \"x\",\n}")
	data, err := readDetail(p)
	if err != nil {
		t.Fatalf("readDetail: %v", err)
	}
	if strings.Contains(string(data), "comment") {
		t.Fatalf("comments must be stripped: %s", data)
	}

	old := In
	In = strings.NewReader(`{"password":"y"}`)
	defer func() { In = old }()
	data, err = readDetail("-")
	if err != nil || !strings.Contains(string(data), `"y"`) {
		t.Fatalf("stdin: %s, %v", data, err)
	}

	if _, err := readDetail(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPrintRows_MasksSecretsAndNumbers(t *testing.T) {
	pw := secret.New("hunter2")
	rows := []classify.Row{
		{Directive: classify.Directive{Label: "user"}, Text: "bob"},
		{Directive: classify.Directive{Label: "Section"}, Heading: true},
		{Directive: classify.Directive{Label: "password", Sensitivity: classify.Secret, Kind: classify.Masked}, Secret: &pw},
		{Directive: classify.Directive{Label: "note"}, Text: "a\nb"},
	}
	var buf bytes.Buffer
	printRows(&buf, rows)
	out := buf.String()

	if strings.Contains(out, "hunter2") {
		t.Fatalf("secret leaked: %s", out)
	}
	for _, want := range []string{"1  user", "== Section ==", "2  password", secret.Mask, `a\nb`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestMasterPassword_PromptFallback(t *testing.T) {
	old := PasswordPrompt
	defer func() { PasswordPrompt = old }()

	PasswordPrompt = func(string) ([]byte, error) { return []byte("typed"), nil }
	pw, err := masterPassword(&config.Config{})
	if err != nil || string(pw) != "typed" {
		t.Fatalf("prompt: %q, %v", pw, err)
	}

	pw, err = masterPassword(&config.Config{MasterPassword: "env"})
	if err != nil || string(pw) != "env" {
		t.Fatalf("env: %q, %v", pw, err)
	}

	PasswordPrompt = func(string) ([]byte, error) { return nil, nil }
	if _, err := masterPassword(&config.Config{}); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
