package lifecycle

import (
	"errors"
	"fmt"

	"github.com/bpdigital/contract-repository/internal/model"
)

var (
	ErrInvalidContractDates    = errors.New("invalid contract dates")
	ErrInvalidContractValue    = errors.New("invalid contract value")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNotActivatable          = errors.New("contract cannot be activated")
	ErrNotEditable             = errors.New("contract cannot be edited")
	ErrNotDeletable            = errors.New("contract cannot be deleted")
	ErrMissingRequiredField    = errors.New("missing required field")
)

func invalidTransition(from, to model.ContractStatus) error {
	return fmt.Errorf("%w: cannot change contract status from %q to %q", ErrInvalidStatusTransition, from, to)
}

func notActivatable(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotActivatable, reason)
}

func notEditable(status model.ContractStatus) error {
	return fmt.Errorf("%w: contract with status %q cannot be edited", ErrNotEditable, status)
}

func notDeletable(status model.ContractStatus) error {
	return fmt.Errorf("%w: contract with status %q cannot be deleted, terminate it first", ErrNotDeletable, status)
}

var errNewEndBeforeCurrent = fmt.Errorf("%w: new end date cannot be before current end date", ErrInvalidContractDates)
