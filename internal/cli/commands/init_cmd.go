package commands

import (
	"context"
	"fmt"

	"Sekkrit/internal/cli/bootstrap"
	"Sekkrit/internal/config"
)

type initCmd struct{}

func (initCmd) Name() string        { return "init" }
func (initCmd) Description() string { return "Создать профиль и задать мастер-пароль" }
func (initCmd) Usage() string       { return "init" }

func (initCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	pw, err := masterPassword(cfg)
	if err != nil {
		return err
	}
	if cfg.MasterPassword == "" {
		again, err := PasswordPrompt("Repeat master password: ")
		if err != nil {
			return err
		}
		if string(again) != string(pw) {
			return fmt.Errorf("passwords do not match")
		}
	}
	dbPath, err := bootstrap.InitProfile(cfg.ClientDBPath, cfg.Profile, pw)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Profile created:")
	fmt.Fprintf(Out, "  profile: %s\n", bootstrap.ResolveProfile(cfg.Profile))
	fmt.Fprintf(Out, "  db:      %s\n", dbPath)
	return nil
}

func init() { RegisterCmd(initCmd{}) }
