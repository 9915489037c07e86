package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/errtrack"
)

var removePetCmd = &cobra.Command{
	Use:          "remove-pet",
	Short:        "💔 Let go of your pet",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.remove-pet", runRemovePet(cmd))
	},
}

func runRemovePet(cmd *cobra.Command) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}
	p, err := requirePet(client)
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	if err := client.RemovePet(); err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(PetMsg("Goodbye, " + p.Name + ". Be free."))
	return w.Err()
}

func init() {
	rootCmd.AddCommand(removePetCmd)
}
