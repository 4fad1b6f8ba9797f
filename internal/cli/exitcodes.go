package cli

// Exit codes for editkit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitValidationError indicates the input failed format validation.
	ExitValidationError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
