package entity

import (
	"errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrSupplierNotRegistered = errors.New("supplier not registered")
	ErrRegistryThrottled     = errors.New("registry throttled")
)
