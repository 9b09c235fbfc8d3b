package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	// CategoryConfig marks an invalid endpoint declaration.
	CategoryConfig Category = "config"

	// CategoryResolution marks a failure while compiling a shape into
	// a codec.
	CategoryResolution Category = "resolution"
)

// WaymarkError is a structured error with a stable code, a detailed
// explanation, and a fix suggestion.
type WaymarkError struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Category is the error type (config, resolution).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *WaymarkError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WaymarkError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *WaymarkError) WithDetail(d string) *WaymarkError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *WaymarkError) WithDetailf(format string, args ...any) *WaymarkError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *WaymarkError) WithSuggestion(s string) *WaymarkError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *WaymarkError) Wrap(err error) *WaymarkError {
	e.Wrapped = err
	return e
}

// New creates a WaymarkError from a registered error code.
func New(code string) *WaymarkError {
	template, ok := registry[code]
	if !ok {
		return &WaymarkError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &WaymarkError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new WaymarkError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *WaymarkError {
	return &WaymarkError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
