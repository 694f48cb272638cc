package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	StatusDraft           ContractStatus = "DRAFT"
	StatusPendingApproval ContractStatus = "PENDING_APPROVAL"
	StatusActive          ContractStatus = "ACTIVE"
	StatusSuspended       ContractStatus = "SUSPENDED"
	StatusExpired         ContractStatus = "EXPIRED"
	StatusTerminated      ContractStatus = "TERMINATED"
	StatusRenewed         ContractStatus = "RENEWED"
)

var statusDisplayNames = map[ContractStatus]string{
	StatusDraft:           "Draft",
	StatusPendingApproval: "Pending Approval",
	StatusActive:          "Active",
	StatusSuspended:       "Suspended",
	StatusExpired:         "Expired",
	StatusTerminated:      "Terminated",
	StatusRenewed:         "Renewed",
}

func (s ContractStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

func (s ContractStatus) Valid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

func (r RiskLevel) DisplayName() string {
	switch r {
	case RiskLow:
		return "Low Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskHigh:
		return "High Risk"
	case RiskCritical:
		return "Critical Risk"
	default:
		return string(r)
	}
}

// Contract is a legal agreement between the bank and an external party.
// Customer fields are denormalized from the core banking system and refreshed
// by the sync operations. Version backs optimistic locking at save time.
type Contract struct {
	ID             uuid.UUID
	ContractNumber string
	Title          string
	Description    string
	ContractTypeID uuid.UUID
	ContractType   *ContractType
	Status         ContractStatus

	CustomerID    string
	CustomerName  string
	CustomerType  string
	T24CustomerID string

	InternalDepartment string
	ExternalParty      string

	StartDate   time.Time
	EndDate     time.Time
	RenewalDate *time.Time

	ContractValue *decimal.Decimal
	Currency      string
	PaymentTerms  string

	RiskLevel           RiskLevel
	BusinessOwner       string
	PrimaryContact      string
	RelationshipManager string

	AutoRenewal  bool
	ReminderDays int

	InternalNotes   string
	ComplianceNotes string

	SourceSystem     string // T24, EVOLAN, MOCK or MANUAL
	LastCustomerSync *time.Time

	IsActive   bool
	CreatedBy  string
	CreatedAt  time.Time
	ModifiedBy string
	UpdatedAt  time.Time
	Version    int64
}

// SoftDelete tombstones the record without removing the row.
func (c *Contract) SoftDelete() {
	c.IsActive = false
}

func (c *Contract) Restore() {
	c.IsActive = true
}
