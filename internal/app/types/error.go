package types

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyUpdateRequest  = errors.New("empty update request")
	ErrInvalidRequestField = errors.New("invalid request field")
	ErrNotFound            = errors.New("not found")
)

func NewErrInvalidRequestField(err string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequestField, err)
}

func NewErrNotFound(obj string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, obj)
}
