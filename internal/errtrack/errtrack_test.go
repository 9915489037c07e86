package errtrack

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrTrackSuite struct {
	suite.Suite
}

func TestErrTrackSuite(t *testing.T) {
	suite.Run(t, new(ErrTrackSuite))
}

// testErr is a minimal trackable kind for these tests.
type testErr struct {
	Tracked
	msg string
}

func (e *testErr) Error() string { return e.msg }

// Package-level helpers so the default-name form records deterministic
// function names.

func failingLeaf() error {
	return Err(error(&testErr{msg: "boom"}))
}

func middleCall() error {
	return Err(failingLeaf())
}

func outerCall() error {
	return Err(middleCall())
}

func (suite *ErrTrackSuite) TestFreshErrorHasEmptyBacktrace() {
	err := &testErr{msg: "boom"}
	suite.Empty(err.Backtrace().Frames())
	suite.Equal(0, err.Backtrace().Len())
}

func (suite *ErrTrackSuite) TestDefaultNameRecordsEnclosingFunction() {
	err := failingLeaf()
	suite.Require().Error(err)

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"errtrack.failingLeaf"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestNestedWrappersRecordInNestingOrder() {
	err := outerCall()
	suite.Require().Error(err)

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal(
		[]string{"errtrack.failingLeaf", "errtrack.middleCall", "errtrack.outerCall"},
		t.Backtrace().Frames(),
	)
}

func (suite *ErrTrackSuite) TestNamedOverride() {
	err := ErrNamed("custom", error(&testErr{msg: "boom"}))
	suite.Require().Error(err)

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"custom"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestDoReturnsSuccessValueUntouched() {
	v, err := Do(func() (string, error) {
		return "result", nil
	})
	suite.NoError(err)
	suite.Equal("result", v)
}

func (suite *ErrTrackSuite) TestDoNamedAppendsOnFailureOnly() {
	v, err := DoNamed("load", func() (int, error) {
		return 0, error(&testErr{msg: "boom"})
	})
	suite.Require().Error(err)
	suite.Zero(v)

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"load"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestNilErrorPassesThrough() {
	suite.NoError(Err(nil))
	suite.NoError(ErrNamed("ignored", nil))
}

func (suite *ErrTrackSuite) TestDuplicateLabelsArePreserved() {
	err := error(&testErr{msg: "boom"})
	for n := 0; n < 3; n++ {
		err = ErrNamed("recurse", err)
	}
	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"recurse", "recurse", "recurse"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestUntrackedErrorsPassThroughUnchanged() {
	plain := errors.New("not ours")
	err := ErrNamed("frame", plain)
	suite.Same(plain, err)
}

func (suite *ErrTrackSuite) TestWrappedTrackableIsStillAnnotated() {
	inner := &testErr{msg: "boom"}
	wrapped := fmt.Errorf("while loading: %w", inner)

	err := ErrNamed("outer", wrapped)
	suite.Require().Error(err)
	suite.Equal([]string{"outer"}, inner.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestMessageErrorTracks() {
	err := ErrNamed("handler", Newf("pet %q refused to eat", "byte"))
	suite.Require().Error(err)
	suite.Equal(`pet "byte" refused to eat`, err.Error())

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"handler"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestAttachmentAfterAsynchronousCompletion() {
	// The result arrives on a channel after a scheduling boundary; the frame
	// is attached when the result is in hand, same as the synchronous case.
	asyncOp := func() (string, error) {
		done := make(chan error, 1)
		go func() {
			done <- error(&testErr{msg: "boom"})
		}()
		return "", <-done
	}

	_, err := DoNamed("scheduler", asyncOp)
	suite.Require().Error(err)

	var t Trackable
	suite.Require().True(errors.As(err, &t))
	suite.Equal([]string{"scheduler"}, t.Backtrace().Frames())
}

func (suite *ErrTrackSuite) TestConcurrentChainsDoNotCrossContaminate() {
	const chains = 16

	results := make([]error, chains)
	var wg sync.WaitGroup
	for i := 0; i < chains; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := error(&testErr{msg: fmt.Sprintf("chain-%d", i)})
			for depth := 0; depth < 4; depth++ {
				err = ErrNamed(fmt.Sprintf("chain-%d-frame-%d", i, depth), err)
			}
			results[i] = err
		}()
	}
	wg.Wait()

	for i, err := range results {
		var t Trackable
		suite.Require().True(errors.As(err, &t))
		want := make([]string, 0, 4)
		for depth := 0; depth < 4; depth++ {
			want = append(want, fmt.Sprintf("chain-%d-frame-%d", i, depth))
		}
		suite.Equal(want, t.Backtrace().Frames())
	}
}
