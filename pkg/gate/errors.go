// Copyright 2026 The pgp-cp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gate

import (
	"fmt"

	"github.com/Doctor-love/pgp-cp/pkg/trust"
)

// ErrorType categorizes gate failures.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeRead indicates the source or signature is missing or unreadable.
	ErrTypeRead

	// ErrTypeVerification indicates the provider could not complete
	// verification (malformed signature, keyring failure). Distinct from
	// a negative trust result, which is a RejectionError.
	ErrTypeVerification

	// ErrTypeWrite indicates the durable write or atomic rename failed.
	ErrTypeWrite

	// ErrTypeConfig indicates the destination is not a valid writable path.
	ErrTypeConfig
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeRead:
		return "ReadError"
	case ErrTypeVerification:
		return "VerificationError"
	case ErrTypeWrite:
		return "WriteError"
	case ErrTypeConfig:
		return "ConfigError"
	default:
		return "UnknownError"
	}
}

// Exit codes reported by GateError and RejectionError, consumed by the CLI.
const (
	exitFailed   = 1
	exitRejected = 2
	exitConfig   = 3
)

// GateError is a structured error for gate failures that are not trust
// rejections: unreadable inputs, provider failures, write failures, and
// destination configuration problems.
type GateError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType

	// Path is the file path related to the error, when applicable.
	Path string

	// Message describes what went wrong.
	Message string

	// Cause is the wrapped underlying error.
	Cause error
}

// Error implements the error interface.
func (e *GateError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Type, e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Type, e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *GateError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error type to the CLI exit code: 3 for configuration
// errors, 1 for everything else.
func (e *GateError) ExitCode() int {
	if e.Type == ErrTypeConfig {
		return exitConfig
	}
	return exitFailed
}

// newGateError creates a gate error without a path.
func newGateError(errType ErrorType, message string, cause error) *GateError {
	return &GateError{Type: errType, Message: message, Cause: cause}
}

// newGateErrorWithPath creates a gate error tied to a file path.
func newGateErrorWithPath(errType ErrorType, path, message string, cause error) *GateError {
	return &GateError{Type: errType, Path: path, Message: message, Cause: cause}
}

// IsType checks whether err is a GateError of the given type.
func IsType(err error, errType ErrorType) bool {
	var gateErr *GateError
	if As(err, &gateErr) {
		return gateErr.Type == errType
	}
	return false
}

// As is a helper that unwraps err into a *GateError.
func As(err error, target **GateError) bool {
	for err != nil {
		if ge, ok := err.(*GateError); ok {
			*target = ge
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// RejectionError reports that verification ran and explicitly refused the
// signature. It is deliberately a different type from GateError: callers
// must be able to tell "proven bad" apart from "couldn't prove", and must
// never retry a rejection.
type RejectionError struct {
	// Decision is the untrusted decision from the provider.
	Decision trust.Decision
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("copy rejected: %s", e.Decision)
}

// ExitCode returns the CLI exit code for rejections.
func (e *RejectionError) ExitCode() int {
	return exitRejected
}
