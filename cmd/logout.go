package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/auth"
	"github.com/bitpet/bitpet/internal/errtrack"
)

var logoutCmd = &cobra.Command{
	Use:          "logout",
	Short:        "👋 Logout from your bitpet account",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.logout", runLogout(cmd))
	},
}

func runLogout(cmd *cobra.Command) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}

	if err := client.Logout(); err != nil {
		dropExpiredSession(cfg, err)
		return err
	}
	if err := auth.ClearSession(cfg); err != nil {
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success("Logged out successfully!"))
	return w.Err()
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
