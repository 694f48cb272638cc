package service

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrContractNumberExists   = errors.New("contract number already exists")
	ErrConcurrentModification = errors.New("contract was modified by another user")
	ErrCustomerNotFound       = errors.New("customer not found in core banking system")
	ErrCustomerInvalid        = errors.New("customer is inactive in core banking system")
)
