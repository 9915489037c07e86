package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/auth"
	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
)

var loginCmd = &cobra.Command{
	Use:          "login",
	Short:        "🔑 Login to your bitpet account",
	Long:         "Exchanges a one-time code for an API session and stores it locally.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.login", runLogin(cmd))
	},
}

func runLogin(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.User != nil {
		return &auth.AlreadyLoggedInError{Email: cfg.User.Email}
	}

	code, err := promptLine(cmd, "Enter the one-time code from bitpet.dev/login: ")
	if err != nil {
		return err
	}

	user, err := newAPIClient("").Login(code)
	if err != nil {
		return err
	}

	cfg.User = &config.UserInfo{
		Username: user.Username,
		Email:    user.Email,
		Token:    user.Token,
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success("Logged in as " + user.Email))
	return w.Err()
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
