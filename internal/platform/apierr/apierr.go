// Package apierr is the single error model for the HTTP API.
// Every resource package used to carry its own identical copy of this; one copy is enough.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeDuplicateKey      Code = "DUPLICATE_KEY"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeInvalidState      Code = "INVALID_STATE"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeForbidden         Code = "FORBIDDEN"
	CodeInternal          Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *APIError           { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *APIError          { return &APIError{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) *APIError          { return &APIError{Code: CodeConflict, Message: msg} }
func DuplicateKey(msg string) *APIError      { return &APIError{Code: CodeDuplicateKey, Message: msg} }
func InsufficientStock(msg string) *APIError { return &APIError{Code: CodeInsufficientStock, Message: msg} }
func InvalidState(msg string) *APIError      { return &APIError{Code: CodeInvalidState, Message: msg} }
func Unauthorized(msg string) *APIError      { return &APIError{Code: CodeUnauthorized, Message: msg} }
func Forbidden(msg string) *APIError         { return &APIError{Code: CodeForbidden, Message: msg} }
func Internal(msg string) *APIError          { return &APIError{Code: CodeInternal, Message: msg} }

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeForbidden:
			return http.StatusForbidden
		case CodeConflict, CodeDuplicateKey, CodeInsufficientStock, CodeInvalidState:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Body is the wire shape: {"error":{"code":...,"message":...}}
type Body struct {
	Error APIError `json:"error"`
}

func NewBody(code Code, msg string) Body {
	return Body{Error: APIError{Code: code, Message: msg}}
}

func FromErr(err error) Body {
	var api *APIError
	if errors.As(err, &api) {
		return Body{Error: *api}
	}
	return NewBody(CodeInternal, err.Error())
}
