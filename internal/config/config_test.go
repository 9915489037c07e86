package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bitpet/bitpet/internal/errtrack"
)

type ConfigSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (suite *ConfigSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()

	// Point os.UserConfigDir into the temp dir on every platform
	suite.T().Setenv("XDG_CONFIG_HOME", suite.tempDir)
	suite.T().Setenv("HOME", suite.tempDir)
	suite.T().Setenv("AppData", suite.tempDir)
}

func (suite *ConfigSuite) configFile() string {
	p, err := Path()
	suite.Require().NoError(err)
	return p
}

func (suite *ConfigSuite) TestFirstLoadCreatesDefaultConfig() {
	cfg, err := Load()
	suite.Require().NoError(err)

	suite.Nil(cfg.User)
	suite.Empty(cfg.Repos)
	suite.FileExists(suite.configFile())
}

func (suite *ConfigSuite) TestSaveLoadRoundTrip() {
	cfg := &Config{
		User: &UserInfo{
			Username: "mock-username",
			Email:    "mock@bitpet.dev",
			Token:    "mock-token",
		},
		Repos: []string{"/tmp/repo-a"},
	}
	suite.Require().NoError(cfg.Save())

	loaded, err := Load()
	suite.Require().NoError(err)
	suite.Equal(cfg.User, loaded.User)
	suite.Equal(cfg.Repos, loaded.Repos)
}

func (suite *ConfigSuite) TestSavedFileIsPrivate() {
	cfg := &Config{User: &UserInfo{Token: "secret"}}
	suite.Require().NoError(cfg.Save())

	info, err := os.Stat(suite.configFile())
	suite.Require().NoError(err)
	suite.Equal(os.FileMode(0o600), info.Mode().Perm())
}

func (suite *ConfigSuite) TestMalformedConfigFile() {
	suite.Require().NoError(os.WriteFile(suite.configFile(), []byte("user: [not a mapping"), 0o600))

	_, err := Load()
	var parseErr *ParseError
	suite.Require().True(errors.As(err, &parseErr))

	var t errtrack.Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"config.Load"}, t.Backtrace().Frames())
}

func (suite *ConfigSuite) TestAddRepo() {
	repo := filepath.Join(suite.tempDir, "repo")
	suite.Require().NoError(os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	cfg, err := Load()
	suite.Require().NoError(err)

	p, err := cfg.AddRepo(repo)
	suite.Require().NoError(err)
	suite.Equal([]string{p.String()}, cfg.Repos)

	// Registering the same repo twice is a no-op
	_, err = cfg.AddRepo(repo)
	suite.Require().NoError(err)
	suite.Len(cfg.Repos, 1)
}

func (suite *ConfigSuite) TestAddRepoRejectsNonRepo() {
	plain := filepath.Join(suite.tempDir, "plain")
	suite.Require().NoError(os.MkdirAll(plain, 0o755))

	cfg, err := Load()
	suite.Require().NoError(err)

	_, err = cfg.AddRepo(plain)
	suite.Require().Error(err)

	var t errtrack.Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"repopath.New", "config.(*Config).AddRepo"}, t.Backtrace().Frames())
}

func (suite *ConfigSuite) TestRemoveRepo() {
	repo := filepath.Join(suite.tempDir, "repo")
	suite.Require().NoError(os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	cfg, err := Load()
	suite.Require().NoError(err)
	_, err = cfg.AddRepo(repo)
	suite.Require().NoError(err)

	suite.Require().NoError(cfg.RemoveRepo(repo))
	suite.Empty(cfg.Repos)
}

func (suite *ConfigSuite) TestRemoveUnknownRepo() {
	cfg, err := Load()
	suite.Require().NoError(err)

	err = cfg.RemoveRepo(filepath.Join(suite.tempDir, "ghost"))
	var notRegistered *NotRegisteredError
	suite.Require().True(errors.As(err, &notRegistered))
}

func (suite *ConfigSuite) TestValidRepoPathsPrunesDeadRepos() {
	alive := filepath.Join(suite.tempDir, "alive")
	suite.Require().NoError(os.MkdirAll(filepath.Join(alive, ".git"), 0o755))

	cfg, err := Load()
	suite.Require().NoError(err)
	aliveP, err := cfg.AddRepo(alive)
	suite.Require().NoError(err)
	cfg.Repos = append(cfg.Repos, filepath.Join(suite.tempDir, "gone"))

	paths, err := cfg.ValidRepoPaths()
	suite.Require().NoError(err)
	suite.Require().Len(paths, 1)
	suite.Equal(aliveP.String(), paths[0].String())
	suite.Equal([]string{aliveP.String()}, cfg.Repos)
}
