package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateDatePair checks the start/end ordering rule: both dates present,
// start strictly before end, and end no more than one day in the past.
func ValidateDatePair(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start date and end date are required", ErrInvalidContractDates)
	}
	if !dateOnly(start).Before(dateOnly(end)) {
		return fmt.Errorf("%w: start date %s must be before end date %s",
			ErrInvalidContractDates, dateOnly(start).Format("2006-01-02"), dateOnly(end).Format("2006-01-02"))
	}
	if dateOnly(end).Before(dateOnly(now).AddDate(0, 0, -1)) {
		return fmt.Errorf("%w: end date cannot be in the past", ErrInvalidContractDates)
	}
	return nil
}

// ValidateRenewalDate requires the renewal date, when present, to fall
// within [start, end].
func ValidateRenewalDate(renewal *time.Time, start, end time.Time) error {
	if renewal == nil {
		return nil
	}
	r := dateOnly(*renewal)
	if r.Before(dateOnly(start)) || r.After(dateOnly(end)) {
		return fmt.Errorf("%w: renewal date must fall between start date and end date", ErrInvalidContractDates)
	}
	return nil
}

// ValidateValue requires a monetary value, when present, to be strictly
// positive.
func ValidateValue(value *decimal.Decimal) error {
	if value == nil {
		return nil
	}
	if value.Sign() <= 0 {
		return fmt.Errorf("%w: contract value must be positive, got %s", ErrInvalidContractValue, value.String())
	}
	return nil
}

// CreationInput carries the fields the required-fields-for-creation rule
// inspects.
type CreationInput struct {
	Title          string
	ContractTypeID uuid.UUID
	CustomerID     string
	StartDate      time.Time
	EndDate        time.Time
}

// ValidateForCreation enforces the required fields on the create path, then
// the date-pair rule.
func ValidateForCreation(in CreationInput, now time.Time) error {
	if strings.TrimSpace(in.Title) == "" {
		return notActivatableCreate("contract title is required")
	}
	if in.ContractTypeID == uuid.Nil {
		return notActivatableCreate("contract type is required")
	}
	if strings.TrimSpace(in.CustomerID) == "" {
		return notActivatableCreate("customer ID is required")
	}
	return ValidateDatePair(in.StartDate, in.EndDate, now)
}

func notActivatableCreate(reason string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, reason)
}
