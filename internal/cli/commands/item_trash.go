package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/config"
)

type itemTrashCmd struct{}

func (itemTrashCmd) Name() string        { return "item-trash" }
func (itemTrashCmd) Description() string { return "Переместить запись в корзину" }
func (itemTrashCmd) Usage() string       { return "item-trash <title>" }

func (itemTrashCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := svc.Trash(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved to trash: %s\n", args[0])
	return nil
}

func init() { RegisterCmd(itemTrashCmd{}) }
