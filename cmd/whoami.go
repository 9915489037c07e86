package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/auth"
	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
)

var whoamiCmd = &cobra.Command{
	Use:          "whoami",
	Short:        "🪪 Show the logged-in user",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.whoami", runWhoami(cmd))
	},
}

func runWhoami(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	user, err := auth.RequireUser(cfg)
	if err != nil {
		return err
	}

	w := GetWriter(cmd)
	w.Printf(Bold("%s"), user.Username).WriteString(" <" + user.Email + ">\n")
	return w.Err()
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
