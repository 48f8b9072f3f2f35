package domain

import (
	"errors"
	"net/http"
)

// Code identifies a failure kind in API responses.
type Code string

const (
	CodeValidationFailed     Code = "VALIDATION_FAILED"
	CodePlaceNotFound        Code = "PLACE_NOT_FOUND"
	CodeInvalidLocation      Code = "INVALID_LOCATION"
	CodeFetchFailed          Code = "FETCH_FAILED"
	CodeSearchFailed         Code = "SEARCH_FAILED"
	CodeReviewCreateFailed   Code = "REVIEW_CREATE_FAILED"
	CodePasswordHashFailed   Code = "PASSWORD_HASH_FAILED"
	CodeReviewFetchFailed    Code = "REVIEW_FETCH_FAILED"
	CodeNaverConfigMissing   Code = "NAVER_API_CONFIG_MISSING"
	CodeNaverAPIError        Code = "NAVER_API_ERROR"
	CodeNaverInvalidResponse Code = "NAVER_API_INVALID_RESPONSE"
	CodeNaverSearchError     Code = "NAVER_SEARCH_ERROR"
	CodeInternal             Code = "INTERNAL_ERROR"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
)

// Error is the tagged failure returned by application services.
// Message is user facing; Err keeps the underlying cause for logs only.
type Error struct {
	Status  int
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error with an optional cause.
func NewError(status int, code Code, message string, cause error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: cause}
}

// ValidationError reports malformed request input.
func ValidationError(message string) *Error {
	return NewError(http.StatusBadRequest, CodeValidationFailed, message, nil)
}

// PlaceNotFound reports a missing place.
func PlaceNotFound(cause error) *Error {
	return NewError(http.StatusNotFound, CodePlaceNotFound, "장소를 찾을 수 없습니다.", cause)
}

// AsError extracts an *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	target, ok := AsError(err)
	return ok && target.Code == code
}
