package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Rule error codes (RULE_*)
const (
	RuleNotFound         ErrorCode = "RULE_001"
	RuleNoConditions     ErrorCode = "RULE_002"
	RuleNoActions        ErrorCode = "RULE_003"
	RuleInvalidCondition ErrorCode = "RULE_004"
	RuleInvalidAction    ErrorCode = "RULE_005"
	RuleInvalidLogic     ErrorCode = "RULE_006"
	RuleNotOwned         ErrorCode = "RULE_007"
	RuleApplyPartial     ErrorCode = "RULE_008"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound    ErrorCode = "TRANSACTION_001"
	TransactionFetchFailed ErrorCode = "TRANSACTION_002"
)

// Sync error codes (SYNC_*)
const (
	SyncNoCredentials     ErrorCode = "SYNC_001"
	SyncProviderFailed    ErrorCode = "SYNC_002"
	SyncProviderThrottled ErrorCode = "SYNC_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Rule errors
	RuleNotFound:         "Rule not found",
	RuleNoConditions:     "Rule must have at least one condition",
	RuleNoActions:        "Rule must have at least one action",
	RuleInvalidCondition: "Rule condition uses an unsupported field, operator or value type",
	RuleInvalidAction:    "Rule action uses an unsupported type or value",
	RuleInvalidLogic:     "Rule condition logic must be AND or OR",
	RuleNotOwned:         "Rule does not belong to the authenticated user",
	RuleApplyPartial:     "Rule applied with partial failures",

	// Transaction errors
	TransactionNotFound:    "Transaction not found",
	TransactionFetchFailed: "Failed to fetch transactions",

	// Sync errors
	SyncNoCredentials:     "No provider credentials stored for this user",
	SyncProviderFailed:    "Bank data provider request failed",
	SyncProviderThrottled: "Bank data provider is temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
