package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/errtrack"
)

var playCmd = &cobra.Command{
	Use:          "play",
	Short:        "🎾 Play with your pet to make it happy",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.play", runPlay(cmd))
	},
}

func runPlay(cmd *cobra.Command) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}
	if _, err := requirePet(client); err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	p, err := client.Play()
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success(p.Name + " had a great time!"))
	w.Printf(Plain("Happiness is now %.0f, energy is %.0f.\n"), p.Happiness, p.Energy)
	return w.Err()
}

func init() {
	rootCmd.AddCommand(playCmd)
}
