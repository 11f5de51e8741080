package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/config"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Заменить деталь записи (JSON/JSONC файл или stdin)"
}
func (itemEditCmd) Usage() string { return "item-edit <title|id> <detail.json|->" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	data, err := readDetail(args[1])
	if err != nil {
		return err
	}
	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := svc.Edit(args[0], data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %s\n", args[0])
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
