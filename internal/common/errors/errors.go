// Package errors provides standardized error handling for the ethics
// workflow engine.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Structural/parse errors: malformed template or component JSON.
	ErrCodeTemplateParseFailed  ErrorCode = "TEMPLATE_PARSE_FAILED"
	ErrCodeComponentKeysMissing ErrorCode = "COMPONENT_KEYS_MISSING"
	ErrCodeComponentShapeWrong  ErrorCode = "COMPONENT_SHAPE_WRONG"

	// Registry errors: unknown discriminant, programmer error.
	ErrCodeNoConverterForType ErrorCode = "NO_CONVERTER_FOR_TYPE"
	ErrCodeNoRendererForType  ErrorCode = "NO_RENDERER_FOR_TYPE"

	// Domain-invariant violations.
	ErrCodeStatusNotSupported  ErrorCode = "STATUS_NOT_SUPPORTED"
	ErrCodeFieldNotWhitelisted ErrorCode = "FIELD_NOT_WHITELISTED"
	ErrCodeFieldTypeMismatch   ErrorCode = "FIELD_TYPE_MISMATCH"
	ErrCodeIdentityMismatch    ErrorCode = "IDENTITY_MISMATCH"

	// Network/backend errors.
	ErrCodeBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	ErrCodeRequestFailed      ErrorCode = "REQUEST_FAILED"
	ErrCodeReauthRequired     ErrorCode = "REAUTH_REQUIRED"
	ErrCodeResourceNotFound   ErrorCode = "RESOURCE_NOT_FOUND"
)

// EngineError represents a structured engine error.
type EngineError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("EngineError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewTemplateParseError creates a non-retryable structural parse error.
// The message must name the offending component type.
func NewTemplateParseError(componentType, details string) *EngineError {
	return &EngineError{
		Code:      ErrCodeTemplateParseFailed,
		Message:   fmt.Sprintf("Failed to parse component of type '%s'", componentType),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingKeysError creates a non-retryable error naming the component
// type and every missing required key.
func NewMissingKeysError(componentType string, missing []string) *EngineError {
	return &EngineError{
		Code:      ErrCodeComponentKeysMissing,
		Message:   fmt.Sprintf("Component of type '%s' is missing required keys", componentType),
		Details:   fmt.Sprintf("missing: %s", strings.Join(missing, ", ")),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewComponentShapeError creates a non-retryable shape violation error.
func NewComponentShapeError(componentType, details string) *EngineError {
	return &EngineError{
		Code:      ErrCodeComponentShapeWrong,
		Message:   fmt.Sprintf("Component of type '%s' has an invalid shape", componentType),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoConverterError creates a fatal registry error for an unregistered
// component type.
func NewNoConverterError(componentType string) *EngineError {
	return &EngineError{
		Code:      ErrCodeNoConverterForType,
		Message:   fmt.Sprintf("No converter registered for type '%s'", componentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoRendererError creates a fatal registry error for an unregistered
// renderer type.
func NewNoRendererError(componentType string) *EngineError {
	return &EngineError{
		Code:      ErrCodeNoRendererForType,
		Message:   fmt.Sprintf("No renderer registered for type '%s'", componentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatusNotSupportedError is raised when an initialiser is constructed
// with a status it does not support.
func NewStatusNotSupportedError(status string) *EngineError {
	return &EngineError{
		Code:      ErrCodeStatusNotSupported,
		Message:   "Initialiser does not support application status",
		Details:   fmt.Sprintf("status: %s", status),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldNotWhitelistedError is raised when a field is assigned that the
// current status does not allow.
func NewFieldNotWhitelistedError(field, status string) *EngineError {
	return &EngineError{
		Code:      ErrCodeFieldNotWhitelisted,
		Message:   fmt.Sprintf("Field '%s' cannot be set for status '%s'", field, status),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldTypeError is raised when an initialiser value has the wrong type
// for its field.
func NewFieldTypeError(field string) *EngineError {
	return &EngineError{
		Code:      ErrCodeFieldTypeMismatch,
		Message:   fmt.Sprintf("Value for field '%s' has the wrong type", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIdentityMismatchError is raised on mismatched username/account identity.
func NewIdentityMismatchError(details string) *EngineError {
	return &EngineError{
		Code:      ErrCodeIdentityMismatch,
		Message:   "User identity does not match account",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBackendUnavailableError creates a retryable connectivity error.
func NewBackendUnavailableError(err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeBackendUnavailable,
		Message:   "Backend connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestFailedError creates a network error from an HTTP status and the
// optional server-supplied error code.
func NewRequestFailedError(status int, serverCode string) *EngineError {
	code := ErrCodeRequestFailed
	retryable := status >= 500
	if status == 401 {
		code = ErrCodeReauthRequired
	}
	if status == 404 {
		code = ErrCodeResourceNotFound
	}
	return &EngineError{
		Code:      code,
		Message:   MessageForStatus(status, serverCode),
		Details:   fmt.Sprintf("status: %d, serverCode: %s", status, serverCode),
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}
