package errors

// Backend error-code → user-facing message dictionary. A 400 response
// carries one of these codes in its body; unknown codes fall back to the
// generic client message.
var backendErrorMessages = map[string]string{
	"INVALID_APPLICATION_STATUS":  "The application is not in a state that allows this action",
	"APPLICATION_NOT_FOUND":       "The requested application could not be found",
	"TEMPLATE_NOT_FOUND":          "The requested application template could not be found",
	"USER_NOT_FOUND":              "The requested user could not be found",
	"INSUFFICIENT_PERMISSIONS":    "You do not have permission to perform this action",
	"ATTACHMENT_ALREADY_EXISTS":   "A file is already attached to this question",
	"FILE_TOO_LARGE":              "The uploaded file exceeds the maximum allowed size",
	"VIRUS_SCAN_FAILED":           "The uploaded file failed the virus scan",
	"ILLEGAL_APPLICATION_COMMENT": "The comment could not be saved against this application",
	"USERNAME_EXISTS":             "An account with this username already exists",
	"EMAIL_EXISTS":                "An account with this email address already exists",
}

const (
	msgGenericClient = "The request could not be processed, please check your input and try again"
	msgReauth        = "Your session has expired, please sign in again"
	msgConnectivity  = "A connection problem occurred while contacting the server, please try again later"
)

// MessageForStatus maps an HTTP status (and optional server-supplied error
// code from a 400 body) to a human-readable message.
func MessageForStatus(status int, serverCode string) string {
	switch {
	case status == 400:
		if msg, ok := backendErrorMessages[serverCode]; ok {
			return msg
		}
		return msgGenericClient
	case status == 401:
		return msgReauth
	case status >= 402 && status < 500:
		return msgGenericClient
	default:
		return msgConnectivity
	}
}

// GetRetryCount returns the bounded retry budget for an error code.
// Network errors retry, everything else fails immediately.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeBackendUnavailable, ErrCodeRequestFailed:
		return 3
	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}
