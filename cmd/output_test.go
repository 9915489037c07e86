package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/pet"
)

func TestWriterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, OutputConfig{Colors: false, Emoji: false})

	w.Writeln(Success("done")).WriteString("details\n")
	assert.NoError(t, w.Err())
	assert.Equal(t, "done\ndetails\n", buf.String())
}

func TestWriterColorsAndEmoji(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, OutputConfig{Colors: true, Emoji: true})

	w.Write(Success("done"))
	out := buf.String()
	assert.Contains(t, out, "✅ ")
	assert.Contains(t, out, "\033[1m")
	assert.Contains(t, out, ColorGreen)
	assert.Contains(t, out, "\033[0m")
}

func TestWriterStopsAfterError(t *testing.T) {
	w := NewWriter(failingWriter{}, OutputConfig{})

	w.WriteString("first").WriteString("second")
	assert.Error(t, w.Err())
}

func TestStatColor(t *testing.T) {
	assert.Equal(t, ColorGreen, StatColor(pet.Good))
	assert.Equal(t, ColorYellow, StatColor(pet.Fair))
	assert.Equal(t, ColorRed, StatColor(pet.Poor))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestErrorReportKeepsMultilineRootCauseTogether(t *testing.T) {
	// A root cause spanning lines (e.g. an API response body) must stay in
	// the root-cause section, not leak into the call-stack styling.
	cause := errtrack.New("bitpet API returned 502: upstream said\nno")
	cause.AddContext("cmd.feed")

	var buf bytes.Buffer
	w := NewWriter(&buf, OutputConfig{Colors: false, Emoji: false})
	writeErrorReport(w, cause)
	assert.NoError(t, w.Err())

	assert.Equal(t,
		"Error: bitpet API returned 502: upstream said\nno\n"+
			"Call stack:\n  1: cmd.feed\n",
		buf.String(),
	)
}

func TestErrorReportWithoutStack(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, OutputConfig{Colors: false, Emoji: false})
	writeErrorReport(w, errors.New("plain failure"))
	assert.NoError(t, w.Err())

	assert.Equal(t, "Error: plain failure\n", buf.String())
}
