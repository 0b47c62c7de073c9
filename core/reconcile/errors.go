package reconcile

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes of a run.
var (
	// ErrConfiguration indicates the desired-state manifest is missing or invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrRemoteRead indicates the live label listing failed.
	ErrRemoteRead = errors.New("remote read error")

	// ErrRemoteWrite indicates a create, update or delete call failed.
	ErrRemoteWrite = errors.New("remote write error")
)

// ConfigurationError represents a manifest that could not be loaded or validated.
type ConfigurationError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid label manifest %s: %s", e.Source, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(source, message string, err error) *ConfigurationError {
	return &ConfigurationError{Source: source, Message: message, Err: err}
}

// RemoteReadError represents a failed live-state listing.
type RemoteReadError struct {
	Remote string
	Err    error
}

// Error implements the error interface
func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("failed to list labels on %s: %v", e.Remote, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RemoteReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteReadError) Is(target error) bool {
	return target == ErrRemoteRead
}

// RemoteWriteError represents a failed mutation for one operation.
type RemoteWriteError struct {
	Operation Operation
	Err       error
}

// Error implements the error interface
func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("failed to %s label %q: %v", e.Operation.Kind, e.Operation.TargetName(), e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RemoteWriteError) Is(target error) bool {
	return target == ErrRemoteWrite
}
