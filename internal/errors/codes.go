package errors

// ErrorCode is the stable machine-readable code returned in API error bodies
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidUserID ErrorCode = "VALIDATION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound  ErrorCode = "BUDGET_001"
	BudgetInvalidID ErrorCode = "BUDGET_002"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationTelegramChatRequired ErrorCode = "NOTIFICATION_001"
	NotificationInvalidTelegramChat  ErrorCode = "NOTIFICATION_002"
	NotificationGenerationFailed     ErrorCode = "NOTIFICATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemNotFound           ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidUserID: "Invalid user ID format",

	BudgetNotFound:  "Budget not found",
	BudgetInvalidID: "Invalid budget ID format",

	NotificationTelegramChatRequired: "Telegram chat ID is required when Telegram delivery is enabled",
	NotificationInvalidTelegramChat:  "Telegram chat ID must be a numeric identifier",
	NotificationGenerationFailed:     "Failed to generate notifications",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemNotFound:           "Resource not found",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
