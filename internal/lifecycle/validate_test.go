package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestValidateDatePair(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid future term", date(2026, 4, 1), date(2027, 3, 31), false},
		{"ends today", date(2026, 1, 1), date(2026, 3, 15), false},
		{"ended yesterday, within grace", date(2026, 1, 1), date(2026, 3, 14), false},
		{"ended two days ago", date(2026, 1, 1), date(2026, 3, 13), true},
		{"start equals end", date(2026, 4, 1), date(2026, 4, 1), true},
		{"start after end", date(2026, 4, 2), date(2026, 4, 1), true},
		{"missing start", time.Time{}, date(2026, 4, 1), true},
		{"missing end", date(2026, 4, 1), time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatePair(tt.start, tt.end, testNow)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatePair() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidContractDates) {
				t.Errorf("error %v should wrap ErrInvalidContractDates", err)
			}
		})
	}
}

func TestValidateRenewalDate(t *testing.T) {
	start, end := date(2026, 4, 1), date(2027, 3, 31)

	if err := ValidateRenewalDate(nil, start, end); err != nil {
		t.Errorf("nil renewal date should pass, got %v", err)
	}

	inside := date(2026, 12, 1)
	if err := ValidateRenewalDate(&inside, start, end); err != nil {
		t.Errorf("renewal inside the term should pass, got %v", err)
	}

	before := date(2026, 3, 31)
	if err := ValidateRenewalDate(&before, start, end); !errors.Is(err, ErrInvalidContractDates) {
		t.Errorf("renewal before start: error = %v, want ErrInvalidContractDates", err)
	}

	after := date(2027, 4, 1)
	if err := ValidateRenewalDate(&after, start, end); !errors.Is(err, ErrInvalidContractDates) {
		t.Errorf("renewal after end: error = %v, want ErrInvalidContractDates", err)
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidateValue(nil); err != nil {
		t.Errorf("nil value should pass, got %v", err)
	}

	positive := decimal.NewFromFloat(0.01)
	if err := ValidateValue(&positive); err != nil {
		t.Errorf("positive value should pass, got %v", err)
	}

	zero := decimal.Zero
	if err := ValidateValue(&zero); !errors.Is(err, ErrInvalidContractValue) {
		t.Errorf("zero value: error = %v, want ErrInvalidContractValue", err)
	}

	negative := decimal.NewFromInt(-100)
	if err := ValidateValue(&negative); !errors.Is(err, ErrInvalidContractValue) {
		t.Errorf("negative value: error = %v, want ErrInvalidContractValue", err)
	}
}

func TestValidateForCreation(t *testing.T) {
	valid := CreationInput{
		Title:          "Managed Services",
		ContractTypeID: uuid.New(),
		CustomerID:     "CUS-12345",
		StartDate:      date(2026, 4, 1),
		EndDate:        date(2027, 3, 31),
	}
	if err := ValidateForCreation(valid, testNow); err != nil {
		t.Fatalf("valid input: error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CreationInput)
		want   error
	}{
		{"blank title", func(in *CreationInput) { in.Title = "  " }, ErrMissingRequiredField},
		{"missing type", func(in *CreationInput) { in.ContractTypeID = uuid.Nil }, ErrMissingRequiredField},
		{"missing customer", func(in *CreationInput) { in.CustomerID = "" }, ErrMissingRequiredField},
		{"bad dates", func(in *CreationInput) { in.EndDate = in.StartDate }, ErrInvalidContractDates},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := ValidateForCreation(in, testNow); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
