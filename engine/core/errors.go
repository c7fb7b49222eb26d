package core

import (
	"errors"
)

var (
	ErrOutOfRange     = errors.New("argument out of range")
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already registered")
	ErrNotInitialized = errors.New("not initialized")
	ErrUnknown        = errors.New("unknown")
)
