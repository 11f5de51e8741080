package commands

import (
	"context"
	"fmt"
	"time"

	"Sekkrit/internal/cli/repo/fs"
	"Sekkrit/internal/config"
	"Sekkrit/internal/middleware"
)

type tokenCmd struct{}

func (tokenCmd) Name() string { return "token" }
func (tokenCmd) Description() string {
	return "Выпустить API-токен (секрет -auth-secret) и сохранить его для inspect -remote"
}
func (tokenCmd) Usage() string { return "token <subject> [ttl]" }

func (tokenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	ttl := middleware.DefaultTokenTTL
	if len(args) == 2 {
		d, err := time.ParseDuration(args[1])
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid ttl %q", args[1])
		}
		ttl = d
	}
	tok, err := middleware.IssueToken(args[0], cfg.AuthSecret, ttl)
	if err != nil {
		return err
	}
	if err := (fs.ClientFSStore{}).Save(tok); err != nil {
		return err
	}
	logger.Debugw("api token issued", "subject", args[0], "ttl", ttl.String())
	fmt.Fprintln(Out, tok)
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
