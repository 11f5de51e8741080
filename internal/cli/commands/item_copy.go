package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/config"
)

type itemCopyCmd struct{}

func (itemCopyCmd) Name() string { return "item-copy" }
func (itemCopyCmd) Description() string {
	return "Скопировать секрет строки (номер или метка из item-show) в буфер обмена"
}
func (itemCopyCmd) Usage() string { return "item-copy <title|id> <row>" }

func (itemCopyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	v, err := svc.Secret(args[0], args[1])
	if err != nil {
		return err
	}
	if err := v.CopyTo(Clipboard); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Скопировано в буфер обмена")
	return nil
}

func init() { RegisterCmd(itemCopyCmd{}) }
