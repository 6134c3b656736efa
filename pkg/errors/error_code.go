package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidType          ErrorCode = 107
	ErrCodeInvalidPeriod        ErrorCode = 108
	ErrCodeMissingParameter     ErrorCode = 109
	ErrCodeInvalidVersion       ErrorCode = 110
	ErrCodeInvalidMultiplier    ErrorCode = 111
	ErrCodeInvalidSlot          ErrorCode = 120
	ErrCodeDuplicateSlot        ErrorCode = 121
	ErrCodeInvalidSelection     ErrorCode = 122
	ErrCodeInvalidTimeType      ErrorCode = 123
	ErrCodeInvalidTheme         ErrorCode = 124

	// Data errors (200-299)
	ErrCodeDataNotFound   ErrorCode = 200
	ErrCodeBarParseFailed ErrorCode = 206
	ErrCodeEncodeFailed   ErrorCode = 207

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Config and bridge errors (900-999)
	ErrCodeConfigReadFailed  ErrorCode = 900
	ErrCodeConfigParseFailed ErrorCode = 901
	ErrCodeSchemaFailed      ErrorCode = 902
	ErrCodeVersionMismatch   ErrorCode = 910
)
