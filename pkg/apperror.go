package pkg

import "fmt"

// AppError is the boundary error type handlers render to clients. Code is a
// stable machine-readable identifier; Err keeps the internal cause, which is
// only echoed to clients outside production deployments.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// ClientMessage returns what the caller may see. Internal detail is appended
// only when includeDetail is set (non-production deployments).
func (e *AppError) ClientMessage(includeDetail bool) string {
	if includeDetail && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}
