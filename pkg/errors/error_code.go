package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter      ErrorCode = 100
	ErrCodeInvalidConfiguration  ErrorCode = 101
	ErrCodeInvalidType           ErrorCode = 102
	ErrCodeInvalidPeriod         ErrorCode = 103
	ErrCodeMissingParameter      ErrorCode = 104
	ErrCodeInvalidMultiplier     ErrorCode = 105
	ErrCodeInvalidStdDev         ErrorCode = 106
	ErrCodeInvalidRiskReward     ErrorCode = 107
	ErrCodeInvalidRecommendation ErrorCode = 108

	// Data errors (200-299)
	ErrCodeDataUnavailable       ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeUnsupportedDataFormat ErrorCode = 203
	ErrCodeUnorderedSeries       ErrorCode = 204
	ErrCodeDuplicateTimestamp    ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeIndicatorCalculation   ErrorCode = 302

	// Analysis errors (400-499)
	ErrCodeAnalysisFailed      ErrorCode = 400
	ErrCodeResearchUnavailable ErrorCode = 401

	// Backtest errors (500-599)
	ErrCodeBacktestFailed      ErrorCode = 500
	ErrCodeBacktestInvalidSpan ErrorCode = 501
)
