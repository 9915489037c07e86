package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
)

var addRepoCmd = &cobra.Command{
	Use:          "add-repo <path>",
	Short:        "📦 Register a git repo whose commits feed your pet",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.add-repo", runAddRepo(cmd, args[0]))
	},
}

func runAddRepo(cmd *cobra.Command, raw string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p, err := cfg.AddRepo(raw)
	if err != nil {
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success("Registered " + p.String()))
	return w.Err()
}

var removeRepoCmd = &cobra.Command{
	Use:          "remove-repo <path>",
	Short:        "🗑️ Unregister a git repo",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.remove-repo", runRemoveRepo(cmd, args[0]))
	},
}

func runRemoveRepo(cmd *cobra.Command, raw string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.RemoveRepo(raw); err != nil {
		return err
	}

	w := GetWriter(cmd)
	w.Writeln(Success("Unregistered " + raw))
	return w.Err()
}

var listReposCmd = &cobra.Command{
	Use:          "list-repos",
	Short:        "📋 List the git repos that feed your pet",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.list-repos", runListRepos(cmd))
	},
}

func runListRepos(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	w := GetWriter(cmd)
	if len(cfg.Repos) == 0 {
		w.Writeln(Info("No repositories registered. Add one with 'bitpet add-repo <path>'."))
		return w.Err()
	}

	w.Writeln(Bold("Registered repositories:"))
	for _, repo := range cfg.Repos {
		w.WritelnString("  " + repo)
	}
	return w.Err()
}

func init() {
	rootCmd.AddCommand(addRepoCmd)
	rootCmd.AddCommand(removeRepoCmd)
	rootCmd.AddCommand(listReposCmd)
}
