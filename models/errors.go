package models

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the services. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidEmail = errors.New("invalid email")
	ErrDuplicate    = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage failure")
)

// Error is a classified service failure. Kind is one of the Err* values above;
// Err is the underlying cause, if any.
type Error struct {
	Kind   error
	Entity string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Entity != "" {
		msg = e.Entity + " " + msg
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NotFound(entity string, id uint) error {
	return &Error{Kind: ErrNotFound, Entity: entity, Msg: fmt.Sprintf("id %d", id)}
}

func Validationf(field, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Entity: field, Msg: fmt.Sprintf(format, args...)}
}

func InvalidEmail(email string) error {
	return &Error{Kind: ErrInvalidEmail, Msg: email}
}

func Duplicate(entity, msg string) error {
	return &Error{Kind: ErrDuplicate, Entity: entity, Msg: msg}
}

func Storage(op string, err error) error {
	return &Error{Kind: ErrStorage, Msg: op, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// KindOf returns the failure kind carried by err, or nil when err is unclassified.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrInvalidEmail, ErrDuplicate, ErrNotFound, ErrStorage} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
