package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/jsonc"
	"golang.org/x/term"

	"Sekkrit/internal/classify"
	"Sekkrit/internal/cli/bootstrap"
	"Sekkrit/internal/cli/service"
	"Sekkrit/internal/config"
)

// In — источник stdin для чтения детали из "-". В тестах подменяется.
var In io.Reader = os.Stdin

// PasswordPrompt запрашивает мастер-пароль без эха. В тестах подменяется.
var PasswordPrompt = func(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("master password required: set SEKKRIT_MASTER_PASSWORD or run in a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(fd)
}

// masterPassword берёт пароль из конфигурации (env SEKKRIT_MASTER_PASSWORD) или спрашивает его.
func masterPassword(cfg *config.Config) ([]byte, error) {
	if cfg.MasterPassword != "" {
		return []byte(cfg.MasterPassword), nil
	}
	pw, err := PasswordPrompt("Master password: ")
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errors.New("empty master password")
	}
	return pw, nil
}

// openService открывает профиль и возвращает сервис items. done закрывает профиль.
func openService(cfg *config.Config) (service.ItemService, func() error, error) {
	pw, err := masterPassword(cfg)
	if err != nil {
		return nil, nil, err
	}
	r, key, done, err := bootstrap.OpenItemRepo(cfg.ClientDBPath, cfg.Profile, pw)
	if err != nil {
		return nil, nil, err
	}
	return service.NewItemServiceLocal(r, key, logger), done, nil
}

// readDetail читает файл детали (или stdin для "-") и снимает JSONC-комментарии и висячие запятые.
func readDetail(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(In)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read detail: %w", err)
	}
	return jsonc.ToJSON(data), nil
}

// printRows печатает строки детали. Секреты всегда выводятся маской; номера строк совпадают с item-copy.
func printRows(w io.Writer, rows []classify.Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	n := 0
	for _, r := range rows {
		if r.Heading {
			fmt.Fprintf(tw, "\t== %s ==\t\n", r.Label)
			continue
		}
		n++
		value := r.Text
		if r.Secret != nil {
			value = r.Secret.String()
		}
		fmt.Fprintf(tw, "%3d\t%s\t%s\n", n, r.Label, oneLine(value))
	}
	_ = tw.Flush()
}

// oneLine экранирует переводы строк, чтобы значение занимало одну строку таблицы.
func oneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)
}
