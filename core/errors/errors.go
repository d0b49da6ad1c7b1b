// Package errors provides standardized error types for the mtmeld codebase,
// plus the mapping from error class to process exit code.
package errors

import (
	"errors"
	"fmt"
)

// Process exit codes, one per fatal error class.
const (
	// ExitConfig is returned for an unusable invocation (missing or
	// invalid source file, unreadable truecase model).
	ExitConfig = 1
	// ExitTranslate is returned when the online-translation collaborator
	// was requested but cannot be set up.
	ExitTranslate = 2
	// ExitDetok is returned when the detokenization collaborator was
	// requested but cannot be set up.
	ExitDetok = 3
	// ExitDetokData is returned when the detokenizer has no rule set for
	// the requested language.
	ExitDetokData = 4
)

// Sentinel errors for common cases
var (
	// ErrLanguageData indicates a collaborator exists but has no data for
	// the requested language.
	ErrLanguageData = errors.New("language data unavailable")
	// ErrUnsupportedInput indicates an input the line sources cannot
	// read, such as a directory.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// Collaborator names used by CollaboratorError.
const (
	CollaboratorTranslate = "online translation"
	CollaboratorDetok     = "detokenizer"
)

// ConfigError represents an unusable invocation. Fatal, reported to the
// user, exits with ExitConfig.
type ConfigError struct {
	Flag    string // Flag the problem relates to (e.g., "--src")
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CollaboratorError represents an optional collaborator (detokenizer,
// online translation) that was requested but cannot be constructed.
// Detected eagerly at setup, never mid-stream.
type CollaboratorError struct {
	Collaborator string // CollaboratorTranslate or CollaboratorDetok
	Reason       string // Why setup failed
	Err          error  // Underlying error, if any
}

func (e *CollaboratorError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s unavailable: %s", e.Collaborator, e.Reason)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// StreamError represents an input stream that could not be opened or read.
// Non-fatal for hypothesis streams (the stream is skipped); fatal for the
// source and reference streams.
type StreamError struct {
	Path string // File path involved
	Err  error  // Underlying error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewConfig creates a ConfigError.
func NewConfig(flag, message string) *ConfigError {
	return &ConfigError{
		Flag:    flag,
		Message: message,
	}
}

// NewCollaborator creates a CollaboratorError.
func NewCollaborator(collaborator, reason string, err error) *CollaboratorError {
	return &CollaboratorError{
		Collaborator: collaborator,
		Reason:       reason,
		Err:          err,
	}
}

// NewStream creates a StreamError.
func NewStream(path string, err error) *StreamError {
	return &StreamError{
		Path: path,
		Err:  err,
	}
}

// ExitCode maps an error chain to its process exit code. Anything outside
// the collaborator taxonomy is a configuration-class failure.
func ExitCode(err error) int {
	var collab *CollaboratorError
	if errors.As(err, &collab) {
		if collab.Collaborator == CollaboratorTranslate {
			return ExitTranslate
		}
		if errors.Is(collab, ErrLanguageData) {
			return ExitDetokData
		}
		return ExitDetok
	}
	return ExitConfig
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
