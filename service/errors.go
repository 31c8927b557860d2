package service

import (
	"errors"

	"github.com/emzola/bookhaven/internal/validator"
)

var (
	ErrFailedValidation   = errors.New("failed validation")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateRecord    = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotPermitted       = errors.New("not permitted")
	ErrBadRequest         = errors.New("bad request")
)

// messageError pairs one of the sentinel errors above with the exact
// message a client sees. Handlers switch on the sentinel with errors.Is and
// surface Error() in the response body, so legacy message strings survive
// the layering.
type messageError struct {
	msg      string
	sentinel error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.sentinel }

// failedValidation converts the earliest recorded validation failure into
// a client-facing error.
func (s *service) failedValidation(v *validator.Validator) error {
	return &messageError{msg: v.First(), sentinel: ErrFailedValidation}
}

func (s *service) validationFailure(msg string) error {
	return &messageError{msg: msg, sentinel: ErrFailedValidation}
}

func (s *service) notFound(msg string) error {
	return &messageError{msg: msg, sentinel: ErrRecordNotFound}
}

func (s *service) badRequest(msg string) error {
	return &messageError{msg: msg, sentinel: ErrBadRequest}
}

func (s *service) notPermitted() error {
	return &messageError{msg: "You are not authorised", sentinel: ErrNotPermitted}
}

// invalidCredentials deliberately reports the same message whether the
// email is unknown or the password is wrong.
func (s *service) invalidCredentials() error {
	return &messageError{
		msg:      "Either password or email is not correct, try with valid one",
		sentinel: ErrInvalidCredentials,
	}
}
