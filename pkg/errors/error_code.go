package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidTimeRange     ErrorCode = 102
	ErrCodeInvalidSymbol        ErrorCode = 103
	ErrCodeInvalidResolution    ErrorCode = 104

	// Remote data errors (200-299)
	ErrCodeRequestFailed       ErrorCode = 200
	ErrCodeResponseParseFailed ErrorCode = 201
	ErrCodeUnexpectedStatus    ErrorCode = 202

	// History engine errors (300-399)
	ErrCodeUnsupportedRequestShape ErrorCode = 300

	// Writer errors (400-499)
	ErrCodeWriteFailed ErrorCode = 400
	ErrCodeQueryFailed ErrorCode = 401
)
