package config

import "github.com/bitpet/bitpet/internal/errtrack"

// NoConfigDirError reports that no user config directory could be determined.
type NoConfigDirError struct {
	errtrack.Tracked
	Err error
}

func (e *NoConfigDirError) Error() string {
	return "Could not determine config directory"
}

func (e *NoConfigDirError) Unwrap() error {
	return e.Err
}

// IOError reports a failed read or write of the config file.
type IOError struct {
	errtrack.Tracked
	Err error
}

func (e *IOError) Error() string {
	return "IO error: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a config file that is not valid YAML.
type ParseError struct {
	errtrack.Tracked
	Err error
}

func (e *ParseError) Error() string {
	return "Failed to parse config: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SerializeError reports a config value that could not be marshalled.
type SerializeError struct {
	errtrack.Tracked
	Err error
}

func (e *SerializeError) Error() string {
	return "Failed to serialize config: " + e.Err.Error()
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// NotRegisteredError reports an attempt to remove a repository that was never
// added.
type NotRegisteredError struct {
	errtrack.Tracked
	Path string
}

func (e *NotRegisteredError) Error() string {
	return "Repository is not registered: " + e.Path
}
