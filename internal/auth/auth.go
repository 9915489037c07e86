// Package auth gates commands behind the logged-in user stored in the local
// config.
package auth

import (
	"github.com/bitpet/bitpet/internal/config"
	"github.com/bitpet/bitpet/internal/errtrack"
)

// RequireUser returns the logged-in user or a NotLoggedInError.
func RequireUser(cfg *config.Config) (*config.UserInfo, error) {
	return errtrack.Do(func() (*config.UserInfo, error) {
		if cfg.User == nil {
			return nil, &NotLoggedInError{}
		}
		return cfg.User, nil
	})
}

// ClearSession drops the stored user, typically after the API rejected the
// token.
func ClearSession(cfg *config.Config) error {
	cfg.User = nil
	return errtrack.Err(cfg.Save())
}
