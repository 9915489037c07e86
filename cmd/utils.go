package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/api"
	"github.com/bitpet/bitpet/internal/auth"
	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/pet"
)

// printf is a helper function to simplify output formatting in commands
func printf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// newAPIClient builds clients; tests swap it for one backed by a fresh mock.
var newAPIClient = func(token string) *api.Client {
	return api.NewClient(token)
}

// authenticatedClient loads the config and returns an API client for the
// logged-in user.
func authenticatedClient() (*config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	user, err := auth.RequireUser(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newAPIClient(user.Token), nil
}

// requirePet fetches the pet, failing with adoption advice when there is
// none.
func requirePet(client *api.Client) (*pet.Pet, error) {
	p, err := client.Status()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errtrack.New("You do not yet have a pet! Please use the 'bitpet new-pet' command to create one.")
	}
	return p, nil
}

// dropExpiredSession forgets the stored user when the API rejected the
// token, so the next command asks for a fresh login.
func dropExpiredSession(cfg *config.Config, err error) {
	var expired *auth.SessionExpiredError
	if errors.As(err, &expired) {
		_ = auth.ClearSession(cfg)
	}
}

// promptLine prints prompt and reads one trimmed line from the command's
// input.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	printf(cmd, "%s", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errtrack.New("No input received")
	}
	return strings.TrimSpace(line), nil
}
