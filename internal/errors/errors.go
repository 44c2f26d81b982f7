// Package errors provides structured error types for the ado-mcp server.
// These errors include helpful hints that guide the LLM to correct course
// when a call against Azure DevOps cannot be made.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error for programmatic handling
type ErrorCode string

const (
	// Connection/configuration errors
	CodeCredentialsNotFound  ErrorCode = "CREDENTIALS_NOT_FOUND"
	CodeClientCreationFailed ErrorCode = "CLIENT_CREATION_FAILED"

	// Parameter errors
	CodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	CodeInvalidParameter ErrorCode = "INVALID_PARAMETER"
)

// ClientError is a structured error type raised at the client-accessor
// boundary. Tool handlers catch it and render it as a plain "Error: ..."
// string result so the hosting server stays available.
type ClientError struct {
	// Code is a machine-readable error category
	Code ErrorCode `json:"code"`

	// Message is a human/LLM-readable description of what went wrong
	Message string `json:"message"`

	// Hint provides actionable guidance on how to fix the error
	Hint string `json:"hint,omitempty"`

	// Cause is the underlying error, if any
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chaining
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// CredentialsNotFound creates an error for missing PAT/organization URL.
// Absence of either credential is a recoverable "not configured" condition
// surfaced per-call, never a startup crash.
func CredentialsNotFound() *ClientError {
	return &ClientError{
		Code: CodeCredentialsNotFound,
		Message: "Azure DevOps PAT or organization URL not found in " +
			"environment variables.",
		Hint: "Set AZURE_DEVOPS_PAT and AZURE_DEVOPS_ORGANIZATION_URL " +
			"in the server environment and retry.",
	}
}

// ClientCreationFailed creates an error for a client that could not be
// fabricated from an otherwise valid connection.
func ClientCreationFailed(kind string, err error) *ClientError {
	msg := fmt.Sprintf("Failed to get %s client.", kind)
	if err != nil {
		msg = fmt.Sprintf("Failed to get %s client: %v", kind, err)
	}
	return &ClientError{
		Code:    CodeClientCreationFailed,
		Message: msg,
		Hint: "The organization URL may be wrong or the PAT may lack " +
			"access to this resource area.",
		Cause: err,
	}
}

// MissingParameter creates an error for missing required tool parameters
func MissingParameter(paramName, description string) *ClientError {
	return &ClientError{
		Code:    CodeMissingParameter,
		Message: fmt.Sprintf("required parameter '%s' is missing", paramName),
		Hint:    description,
	}
}

// InvalidParameter creates an error for invalid parameter values
func InvalidParameter(paramName string, value interface{}, expected string) *ClientError {
	return &ClientError{
		Code:    CodeInvalidParameter,
		Message: fmt.Sprintf("invalid value for parameter '%s': %v", paramName, value),
		Hint:    fmt.Sprintf("Expected: %s", expected),
	}
}

// IsClientError reports whether err is (or wraps) a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return stderrors.As(err, &ce)
}
