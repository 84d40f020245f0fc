package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var target interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &target) {
		return target.IsInvalidRequest()
	}

	return false
}

// UnreachableError is returned when platform can't be reached or responds with non-success status.
type UnreachableError string

// Error implements error interface
func (e UnreachableError) Error() string {
	return string(e)
}

// IsUnreachable tells that this error is 'platform unreachable'.
func (UnreachableError) IsUnreachable() bool {
	return true
}

// IsUnreachableError checks if given error is caused by unreachable platform
func IsUnreachableError(err error) bool {
	var target interface {
		IsUnreachable() bool
	}
	if errors.As(err, &target) {
		return target.IsUnreachable()
	}

	return false
}

// NotFoundError is returned when requested entity doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by missing entity
func IsNotFoundError(err error) bool {
	var target interface {
		IsNotFound() bool
	}
	if errors.As(err, &target) {
		return target.IsNotFound()
	}

	return false
}

// MalformedResponseError is returned when platform payload has unexpected shape.
type MalformedResponseError string

// Error implements error interface
func (e MalformedResponseError) Error() string {
	return string(e)
}

// IsMalformedResponse tells that this error is 'malformed response'.
func (MalformedResponseError) IsMalformedResponse() bool {
	return true
}

// IsMalformedResponseError checks if given error is caused by unexpected payload
func IsMalformedResponseError(err error) bool {
	var target interface {
		IsMalformedResponse() bool
	}
	if errors.As(err, &target) {
		return target.IsMalformedResponse()
	}

	return false
}
