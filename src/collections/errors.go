package collections

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrWrongMode            = errors.New("wrong mode")
	ErrEmptyStructure       = errors.New("empty structure")
	ErrNotFound             = errors.New("no such element")
)

func wrongMode(m Mode, use string) error {
	return fmt.Errorf("list is a %v, use %s: %w", m, use, ErrWrongMode)
}

func errNilValue(op string) error {
	return fmt.Errorf("%s: nil value: %w", op, ErrInvalidArgument)
}
