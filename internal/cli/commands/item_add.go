package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/config"
	"Sekkrit/internal/detail"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись; деталь читается из JSON/JSONC файла или stdin (-)"
}
func (itemAddCmd) Usage() string { return "item-add <title> <category> [<detail.json|-> [folder]]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return ErrUsage
	}
	title := args[0]
	category, err := detail.ParseCategory(args[1])
	if err != nil {
		return err
	}
	var data []byte
	if len(args) >= 3 {
		if data, err = readDetail(args[2]); err != nil {
			return err
		}
	}
	folder := ""
	if len(args) == 4 {
		folder = args[3]
	}

	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	id, err := svc.Add(title, category, folder, data)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %s\n", id)
	fmt.Fprintf(Out, "  title:    %s\n", title)
	fmt.Fprintf(Out, "  category: %s\n", category)
	if data == nil {
		fmt.Fprintln(Out, "  detail:   <not set>")
	}
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
