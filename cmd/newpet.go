package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/errtrack"
)

var newPetCmd = &cobra.Command{
	Use:          "new-pet [name]",
	Short:        "✨ Adopt a new pet if you don't already have one",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.new-pet", runNewPet(cmd, args))
	},
}

func runNewPet(cmd *cobra.Command, args []string) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		name, err = promptLine(cmd, "What will you name your pet? ")
		if err != nil {
			return err
		}
	}
	if name == "" {
		return errtrack.New("Your pet needs a name")
	}

	p, err := client.NewPet(name)
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success("Say hello to " + p.Name + "!"))
	w.Writeln(Info("Feed it with 'bitpet feed' after you commit some code."))
	return w.Err()
}

func init() {
	rootCmd.AddCommand(newPetCmd)
}
