package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать записи (опционально только из папки)"
}
func (itemsCmd) Usage() string { return "items [folder]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	folder := ""
	if len(args) == 1 {
		folder = args[0]
	}
	svc, done, err := openService(cfg)
	if err != nil {
		return err
	}
	defer done()
	list, err := svc.List(folder)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  title=%s  category=%s  icon=%s", it.ID, it.Title, it.Category, it.Category.Icon())
		if it.FolderID != "" {
			fmt.Fprintf(Out, "  folder=%s", it.FolderID)
		}
		fmt.Fprintln(Out)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
