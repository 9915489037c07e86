package cmd

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/api"
	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/git"
)

var feedCmd = &cobra.Command{
	Use:          "feed",
	Short:        "🍔 Feed your pet with your git commits since the last feeding",
	Long:         "Counts commits in your registered repositories since the pet last ate and offers them as food. The pet may demand a coding challenge first.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errtrack.ErrNamed("cmd.feed", runFeed(cmd))
	},
}

func runFeed(cmd *cobra.Command) error {
	cfg, client, err := authenticatedClient()
	if err != nil {
		return err
	}
	p, err := requirePet(client)
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	food, err := gatherFood(cfg, time.UnixMilli(p.LastFedAt))
	if err != nil {
		return err
	}

	result, err := client.Feed(food)
	if err != nil {
		dropExpiredSession(cfg, err)
		return err
	}

	w := GetWriter(cmd)
	switch result.Status {
	case api.FeedStatusNothingToFeed:
		w.Writeln(Info("No new commits since the last feeding. Go write some code!"))
		return w.Err()
	case api.FeedStatusAskForChallenge:
		return answerChallenge(cmd, client, result.Challenge)
	case api.FeedStatusFed:
		w.Printf(Success("%s ate %d commits!"), p.Name, food).WriteString("\n")
		return w.Err()
	}
	return errtrack.Newf("Unexpected feed status: %s", result.Status)
}

// gatherFood counts commits across the registered repositories made after
// since.
func gatherFood(cfg *config.Config, since time.Time) (int, error) {
	return errtrack.Do(func() (int, error) {
		paths, err := cfg.ValidRepoPaths()
		if err != nil {
			return 0, err
		}

		total := 0
		for _, p := range paths {
			count, err := git.New(p.Dir()).CommitCountSince(since)
			if err != nil {
				return 0, err
			}
			total += count
		}
		log.Debug().Int("food", total).Time("since", since).Msg("gathered commits")
		return total, nil
	})
}

// answerChallenge runs the interactive challenge exchange that completes a
// feeding.
func answerChallenge(cmd *cobra.Command, client *api.Client, challenge *api.Challenge) error {
	return errtrack.Err(runChallenge(cmd, client, challenge))
}

func runChallenge(cmd *cobra.Command, client *api.Client, challenge *api.Challenge) error {
	w := GetWriter(cmd)
	w.Writeln(PetMsg("Your pet poses a challenge before it eats:"))
	w.WritelnString(challenge.Description)
	if err := w.Err(); err != nil {
		return err
	}

	answer, err := promptLine(cmd, "Your answer: ")
	if err != nil {
		return err
	}

	result, err := client.AnswerChallenge(challenge.ID, answer)
	if err != nil {
		return err
	}
	if result.Status != api.AnswerCorrect {
		return errtrack.New("That answer is not correct. Your pet stays hungry; try feeding again.")
	}

	fed := result.FeedResult
	if fed == nil || fed.Pet == nil {
		w.Writeln(Success("Correct! Your pet is eating happily."))
		return w.Err()
	}
	w.Writeln(Success("Correct! " + fed.Pet.Name + " is eating happily."))
	w.Printf(Plain("Hunger is now %.0f, streak is %d days.\n"), fed.Pet.Hunger, fed.Pet.Streak)
	return w.Err()
}

func init() {
	rootCmd.AddCommand(feedCmd)
}
