// Package errors provides coded domain errors with localized user messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Auth errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeStorageCorrupt Code = "STORAGE_CORRUPT"
)

// ExitCode maps an error code to a process exit status for command-line
// front ends. Caller mistakes exit with 2, storage faults with 3.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidCredentials,
		CodeAlreadyExists,
		CodePermissionDenied,
		CodeInvalidArgument,
		CodeNotFound:
		return 2
	case CodeStorageCorrupt:
		return 3
	default:
		return 1
	}
}
