package commands

import (
	"context"
	"errors"
	"fmt"

	"Sekkrit/internal/cli/service"
	"Sekkrit/internal/config"
)

type itemShowCmd struct{}

func (itemShowCmd) Name() string { return "item-show" }
func (itemShowCmd) Description() string {
	return "Показать запись по заголовку; секреты замаскированы"
}
func (itemShowCmd) Usage() string { return "item-show <title|id>" }

func (itemShowCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	title := args[0]
	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	v, err := svc.Show(title)
	if errors.Is(err, service.ErrNoDetail) {
		fmt.Fprintf(Out, "%s: детали нет\n", title)
		return nil
	}
	if err != nil {
		return err
	}
	trashed := ""
	if v.Trashed {
		trashed = " (trashed)"
	}
	fmt.Fprintf(Out, "%s  [%s, %s]%s\n", v.Title, v.Category, v.Icon, trashed)
	fmt.Fprintf(Out, "id: %s\n", v.ID)
	printRows(Out, v.Rows)
	if n := len(v.Secrets()); n > 0 {
		fmt.Fprintf(Out, "Секретов: %d (item-copy <title> <row>)\n", n)
	}
	return nil
}

func init() { RegisterCmd(itemShowCmd{}) }
