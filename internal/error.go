package internal

import (
	"errors"
	"fmt"
)

// Storage errors. Repositories translate driver errors into these so services never
// depend on the persistence layer.
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("record violates a unique constraint")
	ErrRecordInUse     = errors.New("record is still referenced")
)

type ErrorCode string

const (
	ErrorCodeInternal        ErrorCode = "Internal"
	ErrorCodeNotFound        ErrorCode = "NotFound"
	ErrorCodeUnauthorized    ErrorCode = "Unauthorized"
	ErrorCodeInvalidArgument ErrorCode = "InvalidArgument"
	ErrorCodeConflict        ErrorCode = "Conflict"
)

type Error struct {
	src  error
	msg  string
	code ErrorCode
}

// WrapErrorf returns a wrapped error
func WrapErrorf(src error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		src:  src,
		code: code,
		msg:  fmt.Sprintf(format, a...),
	}
}

// NewErrorf instantiates a new error
func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

// NotFoundErrorf reports that an entity does not exist or has been deleted
func NotFoundErrorf(src error, entity string, id interface{}) error {
	return WrapErrorf(src, ErrorCodeNotFound, "%s with id %v not found", entity, id)
}

// WrapStoreErrorf maps a storage error to its code. Lookups that miss become NotFound for
// the given entity; anything unexpected is Internal.
func WrapStoreErrorf(src error, entity string, id interface{}, format string, a ...interface{}) error {
	switch {
	case errors.Is(src, ErrRecordNotFound):
		return NotFoundErrorf(src, entity, id)
	case errors.Is(src, ErrDuplicateRecord):
		return WrapErrorf(src, ErrorCodeInvalidArgument, format, a...)
	case errors.Is(src, ErrRecordInUse):
		return WrapErrorf(src, ErrorCodeConflict, "%s with id %v is still referenced by other records", entity, id)
	}
	return WrapErrorf(src, ErrorCodeInternal, format, a...)
}

// WrapCreateErrorf maps a storage error raised while inserting a new record. The
// record has no id yet, so a foreign key failure means a parent was removed after
// it was resolved.
func WrapCreateErrorf(src error, format string, a ...interface{}) error {
	switch {
	case errors.Is(src, ErrDuplicateRecord):
		return WrapErrorf(src, ErrorCodeInvalidArgument, format, a...)
	case errors.Is(src, ErrRecordInUse):
		return WrapErrorf(src, ErrorCodeConflict, "A referenced record was removed, please retry")
	}
	return WrapErrorf(src, ErrorCodeInternal, format, a...)
}

// Error returns the message, when wrapping errors the wrapped error is returned
func (e *Error) Error() string {
	if e.src != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.src)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error {
	return e.src
}

// Code returns the code representing this error
func (e *Error) Code() ErrorCode {
	return e.code
}

// Message returns the message of the error. Unlike Error(), this will only return the last error's message as opposed to the entire chain error
func (e *Error) Message() string {
	return e.msg
}

// CodeOf returns the code of the outermost coded error in err's chain, or Internal
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ErrorCodeInternal
}
