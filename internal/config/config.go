// Package config persists bitpet's local state: the logged-in user and the
// git repositories that feed the pet.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/repopath"
)

// UserInfo holds the logged-in user's identity and API token.
type UserInfo struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Token    string `yaml:"token"`
}

// Config is the on-disk state, stored at <UserConfigDir>/bitpet/config.yaml.
type Config struct {
	User  *UserInfo `yaml:"user,omitempty"`
	Repos []string  `yaml:"repos,omitempty"`
}

// Path returns the config file location, creating the bitpet config
// directory if needed.
func Path() (string, error) {
	return errtrack.Do(path)
}

func path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &NoConfigDirError{Err: err}
	}
	dir := filepath.Join(base, "bitpet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IOError{Err: err}
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file, creating and saving a default one on first
// run.
func Load() (*Config, error) {
	return errtrack.Do(load)
}

func load() (*Config, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, &IOError{Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &cfg, nil
}

// Save writes the config file with user-only permissions; it holds the API
// token.
func (c *Config) Save() error {
	return errtrack.Err(c.save())
}

func (c *Config) save() error {
	p, err := Path()
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return &SerializeError{Err: err}
	}
	if err := os.WriteFile(p, content, 0o600); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// AddRepo normalises raw to its git root and registers it. Adding a repo
// that is already registered is a no-op.
func (c *Config) AddRepo(raw string) (*repopath.Path, error) {
	return errtrack.Do(func() (*repopath.Path, error) {
		p, err := repopath.New(raw)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(c.Repos, p.String()) {
			c.Repos = append(c.Repos, p.String())
			if err := c.Save(); err != nil {
				return nil, err
			}
		}
		return p, nil
	})
}

// RemoveRepo unregisters the repository containing raw.
func (c *Config) RemoveRepo(raw string) error {
	return errtrack.Err(c.removeRepo(raw))
}

func (c *Config) removeRepo(raw string) error {
	target := raw
	if p, err := repopath.New(raw); err == nil {
		target = p.String()
	}

	i := slices.Index(c.Repos, target)
	if i < 0 {
		return &NotRegisteredError{Path: raw}
	}
	c.Repos = slices.Delete(c.Repos, i, i+1)
	return c.Save()
}

// ValidRepoPaths re-normalises the registered repositories, silently drops
// the ones that no longer resolve, and saves the pruned list.
func (c *Config) ValidRepoPaths() ([]*repopath.Path, error) {
	return errtrack.Do(c.validRepoPaths)
}

func (c *Config) validRepoPaths() ([]*repopath.Path, error) {
	var (
		valid []string
		paths []*repopath.Path
	)
	for _, repo := range c.Repos {
		p, err := repopath.New(repo)
		if err != nil {
			continue
		}
		valid = append(valid, repo)
		paths = append(paths, p)
	}

	c.Repos = valid
	if err := c.Save(); err != nil {
		return nil, err
	}
	return paths, nil
}
