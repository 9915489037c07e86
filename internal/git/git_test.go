package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type GitSuite struct {
	suite.Suite
	repoDir string
	git     *Git
}

func TestGitSuite(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	suite.Run(t, new(GitSuite))
}

func (suite *GitSuite) SetupTest() {
	suite.repoDir = suite.T().TempDir()
	suite.git = New(suite.repoDir)

	suite.runGit("init")
	suite.runGit("config", "user.name", "Test User")
	suite.runGit("config", "user.email", "test@example.com")
	suite.runGit("config", "commit.gpgsign", "false")
}

func (suite *GitSuite) runGit(args ...string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = suite.repoDir
	output, err := cmd.CombinedOutput()
	suite.Require().NoError(err, "git %v: %s", args, output)
}

func (suite *GitSuite) commitFile(name string) {
	path := filepath.Join(suite.repoDir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(name+"\n"), 0o644))
	suite.runGit("add", name)
	suite.runGit("commit", "-m", "add "+name)
}

func (suite *GitSuite) TestCommitCountSinceEmptyRepo() {
	count, err := suite.git.CommitCountSince(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *GitSuite) TestCommitCountSinceCountsNewCommits() {
	suite.commitFile("one.txt")
	suite.commitFile("two.txt")

	count, err := suite.git.CommitCountSince(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *GitSuite) TestCommitCountSinceExcludesOldCommits() {
	suite.commitFile("one.txt")

	count, err := suite.git.CommitCountSince(time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *GitSuite) TestLastCommitTimeEmptyRepo() {
	last, err := suite.git.LastCommitTime()
	suite.Require().NoError(err)
	suite.True(last.IsZero())
}

func (suite *GitSuite) TestLastCommitTime() {
	suite.commitFile("one.txt")

	last, err := suite.git.LastCommitTime()
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now(), last, time.Minute)
}
