package domain

import (
	"errors"
	"fmt"
)

// Base of every business failure; the kinds below wrap it so errors.Is
// matches both the concrete kind and ErrBusiness.
var ErrBusiness = errors.New("business rule violation")

var (
	ErrBadRequest         = fmt.Errorf("%w: bad request", ErrBusiness)
	ErrInvalidCredential  = fmt.Errorf("%w: invalid credential", ErrBusiness)
	ErrResourceNotFound   = fmt.Errorf("%w: resource not found", ErrBusiness)
	ErrConflict           = fmt.Errorf("%w: conflict", ErrBusiness)
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrRevokedTokenExists = errors.New("token already revoked")
)

// BusinessError carries a client-facing message together with its kind.
type BusinessError struct {
	Kind    error
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

func (e *BusinessError) Unwrap() error { return e.Kind }

func NewBadRequest(message string) error {
	return &BusinessError{Kind: ErrBadRequest, Message: message}
}

func NewInvalidCredential(message string) error {
	return &BusinessError{Kind: ErrInvalidCredential, Message: message}
}

func NewResourceNotFound(message string) error {
	return &BusinessError{Kind: ErrResourceNotFound, Message: message}
}

func NewConflict(message string) error {
	return &BusinessError{Kind: ErrConflict, Message: message}
}
