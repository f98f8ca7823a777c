package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown            = "UNKNOWN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodePermissionDenied   = "PERMISSION_DENIED"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageCorrupt     = "STORAGE_CORRUPT"
)

var enUSMessages = map[Code]string{
	CodeUnknown:            "An error occurred. Please try again.",
	CodeInvalidCredentials: "Invalid credentials",
	CodeAlreadyExists:      "User already exists",
	CodePermissionDenied:   "Only instructors can manage courses",
	CodeInvalidArgument:    "Invalid value for {{.Field}}",
	CodeNotFound:           "Record not found",
	CodeStorageCorrupt:     "Stored data for {{.Key}} is unreadable",
}
