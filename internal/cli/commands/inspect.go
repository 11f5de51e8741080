package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"Sekkrit/internal/classify"
	"Sekkrit/internal/cli/api"
	"Sekkrit/internal/cli/repo/fs"
	"Sekkrit/internal/config"
	"Sekkrit/internal/detail"
	"Sekkrit/internal/secret"
)

type inspectCmd struct{}

func (inspectCmd) Name() string { return "inspect" }
func (inspectCmd) Description() string {
	return "Проверить деталь без сохранения (-remote: через сервер)"
}
func (inspectCmd) Usage() string { return "inspect [-remote] <detail.json|-> [category]" }

func (inspectCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fl := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fl.SetOutput(io.Discard)
	remote := fl.Bool("remote", false, "inspect on the server")
	if err := fl.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fl.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return ErrUsage
	}
	category := detail.CategoryLogin
	if len(rest) == 2 {
		c, err := detail.ParseCategory(rest[1])
		if err != nil {
			return err
		}
		category = c
	}
	data, err := readDetail(rest[0])
	if err != nil {
		return err
	}

	if *remote {
		return inspectRemote(ctx, cfg, category, data)
	}

	d, err := detail.DecodeDetail(category, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s  [%s]\n", category, category.Icon())
	printRows(Out, classify.Rows(d))
	return nil
}

func inspectRemote(ctx context.Context, cfg *config.Config, category detail.Category, data []byte) error {
	token, err := fs.ClientFSStore{}.Load()
	if err != nil {
		return fmt.Errorf("no api token, run `token <subject>` first: %w", err)
	}
	res, err := api.Inspect(ctx, cfg.ServerURL, token, string(category), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%s  [%s]  (server %s)\n", category, res.Icon, cfg.ServerURL)
	rows := make([]classify.Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		row := classify.Row{Directive: classify.Directive{Label: r.Label}, Text: r.Value, Heading: r.Heading}
		if r.Sensitivity == classify.Secret.String() {
			row.Sensitivity = classify.Secret
			row.Kind = classify.Masked
			// значение сервер не возвращает
			masked := secret.New("")
			row.Text = ""
			row.Secret = &masked
		}
		rows = append(rows, row)
	}
	printRows(Out, rows)
	return nil
}

func init() { RegisterCmd(inspectCmd{}) }
