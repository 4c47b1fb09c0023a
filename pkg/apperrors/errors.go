package apperrors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidMessageFormat(msg string) error {
	return New(CodeInvalidMessageFormat, msg)
}

func Validation(msg string) error {
	return New(CodeValidation, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func FetchFailed(msg string, cause error) error {
	return Wrap(CodeFetch, msg, cause)
}

func UploadFailed(msg string, cause error) error {
	return Wrap(CodeUpload, msg, cause)
}

func Reasoning(msg string, cause error) error {
	return Wrap(CodeReasoning, msg, cause)
}

func SearchProvider(msg string, cause error) error {
	return Wrap(CodeSearchProvider, msg, cause)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}

// CodeOf extracts the Code from an error chain, CodeUnknown if none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// Is reports whether the error carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
