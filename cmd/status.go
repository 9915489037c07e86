package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/errtrack"
)

var statusCmd = &cobra.Command{
	Use:          "status",
	Short:        "🐾 Show your pet's mood, health and other details",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.status", runStatus(cmd))
	},
}

func runStatus(cmd *cobra.Command) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}
	p, err := requirePet(client)
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(PetMsg("Here is how " + p.Name + " is feeling:"))
	for _, line := range p.StatusLines(time.Now()) {
		w.WriteString("- " + line.Label + ": ")
		w.Writeln(Message{Text: line.Value, Color: StatColor(line.Health)})
	}
	return w.Err()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
