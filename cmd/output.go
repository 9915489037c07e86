package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/pet"
)

// OutputConfig controls formatting behavior
type OutputConfig struct {
	Colors bool
	Emoji  bool
}

// Writer provides formatted output with configurable styling
type Writer struct {
	out    io.Writer
	config OutputConfig
	err    error // first error encountered
}

// NewWriter creates a new Writer with the given configuration
func NewWriter(out io.Writer, config OutputConfig) *Writer {
	return &Writer{
		out:    out,
		config: config,
	}
}

// Message represents a structured message with optional formatting
type Message struct {
	Text  string
	Color string
	Emoji string
	Bold  bool
}

// Write outputs a message according to the writer's configuration
func (w *Writer) Write(msg Message) *Writer {
	if w.err != nil {
		return w
	}

	var output string
	if w.config.Emoji && msg.Emoji != "" {
		output = msg.Emoji + " "
	}
	if w.config.Colors {
		if msg.Bold {
			output += "\033[1m"
		}
		if msg.Color != "" {
			output += msg.Color
		}
	}

	output += msg.Text

	if w.config.Colors && (msg.Bold || msg.Color != "") {
		output += "\033[0m"
	}

	_, w.err = fmt.Fprint(w.out, output)
	return w
}

// Printf is like Write but with format string
func (w *Writer) Printf(msg Message, args ...any) *Writer {
	newMsg := msg
	newMsg.Text = fmt.Sprintf(msg.Text, args...)
	return w.Write(newMsg)
}

// Writeln writes a message followed by a newline
func (w *Writer) Writeln(msg Message) *Writer {
	return w.Write(msg).WriteString("\n")
}

// WriteString outputs plain text (no formatting)
func (w *Writer) WriteString(text string) *Writer {
	if w.err != nil {
		return w
	}
	_, w.err = fmt.Fprint(w.out, text)
	return w
}

// WritelnString outputs plain text followed by a newline
func (w *Writer) WritelnString(text string) *Writer {
	if w.err != nil {
		return w
	}

	_, w.err = fmt.Fprintln(w.out, text)
	return w
}

// Err returns the first error encountered during writing
func (w *Writer) Err() error {
	return w.err
}

// ANSI color codes
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorCyan    = "\033[36m"
	ColorGray    = "\033[90m"
	ColorCyanDim = "\033[2;36m"
)

// Predefined message constructors for bitpet's common patterns

func Success(text string) Message {
	return Message{Text: text, Color: ColorGreen, Emoji: "✅", Bold: true}
}

func Info(text string) Message {
	return Message{Text: text, Color: ColorYellow, Emoji: "💡"}
}

func PetMsg(text string) Message {
	return Message{Text: text, Emoji: "🐾", Bold: true}
}

func Plain(text string) Message {
	return Message{Text: text}
}

func Bold(text string) Message {
	return Message{Text: text, Bold: true}
}

// StatColor maps a stat grade to its display color.
func StatColor(h pet.Health) string {
	switch h {
	case pet.Good:
		return ColorGreen
	case pet.Fair:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Global output configuration
var (
	globalConfig = OutputConfig{
		Colors: true, // auto-detect on first use
		Emoji:  true,
	}
	autoDetected bool
)

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// autoDetectConfig performs one-time auto-detection if not explicitly configured
func autoDetectConfig() {
	if !autoDetected {
		if os.Getenv("NO_COLOR") != "" {
			globalConfig.Colors = false
		} else {
			globalConfig.Colors = isTerminal()
		}
		autoDetected = true
	}
}

// GetWriter returns a writer for the given cobra command
func GetWriter(cmd *cobra.Command) *Writer {
	autoDetectConfig()
	return NewWriter(cmd.OutOrStdout(), globalConfig)
}

// GetErrorWriter returns a writer for stderr
func GetErrorWriter() *Writer {
	autoDetectConfig()
	return NewWriter(os.Stderr, globalConfig)
}
