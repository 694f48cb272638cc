package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bpdigital/contract-repository/internal/model"
)

// transitions is the closed table of legal status moves. EXPIRED is reached
// by the passage of time, never by an explicit transition; TERMINATED and
// RENEWED are terminal.
var transitions = map[model.ContractStatus][]model.ContractStatus{
	model.StatusDraft:     {model.StatusActive},
	model.StatusActive:    {model.StatusSuspended, model.StatusTerminated, model.StatusRenewed},
	model.StatusSuspended: {model.StatusTerminated},
}

func CanTransition(from, to model.ContractStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Activate moves a draft contract to ACTIVE. The guard checks the current
// status first, then field completeness, surfacing the first failing
// condition.
func Activate(c *model.Contract) error {
	if c.Status != model.StatusDraft {
		return invalidTransition(c.Status, model.StatusActive)
	}
	if strings.TrimSpace(c.Title) == "" {
		return notActivatable("contract title is required for activation")
	}
	if c.ContractTypeID == uuid.Nil {
		return notActivatable("contract type is required for activation")
	}
	if strings.TrimSpace(c.CustomerID) == "" {
		return notActivatable("customer is required for activation")
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return notActivatable("contract dates are required for activation")
	}
	c.Status = model.StatusActive
	return nil
}

// Suspend takes an active contract out of force, recording the reason as a
// dated compliance note.
func Suspend(c *model.Contract, reason string, now time.Time) error {
	if !CanTransition(c.Status, model.StatusSuspended) {
		return invalidTransition(c.Status, model.StatusSuspended)
	}
	c.Status = model.StatusSuspended
	c.ComplianceNotes = AppendNote(c.ComplianceNotes, "Suspended: "+reason, now)
	return nil
}

// Terminate ends an active or suspended contract permanently.
func Terminate(c *model.Contract, reason string, now time.Time) error {
	if !CanTransition(c.Status, model.StatusTerminated) {
		return invalidTransition(c.Status, model.StatusTerminated)
	}
	c.Status = model.StatusTerminated
	c.ComplianceNotes = AppendNote(c.ComplianceNotes, "Terminated: "+reason, now)
	return nil
}

// Renew builds the successor draft for an active contract and marks the
// original RENEWED. The successor copies classification, customer linkage,
// parties, financial terms and lifecycle flags; its contract number is left
// empty for the caller to assign.
func Renew(original *model.Contract, newStart, newEnd, now time.Time) (*model.Contract, error) {
	if !CanTransition(original.Status, model.StatusRenewed) {
		return nil, invalidTransition(original.Status, model.StatusRenewed)
	}
	if err := ValidateDatePair(newStart, newEnd, now); err != nil {
		return nil, err
	}

	renewed := &model.Contract{
		Title:               original.Title + " (Renewed)",
		Description:         original.Description,
		ContractTypeID:      original.ContractTypeID,
		ContractType:        original.ContractType,
		Status:              model.StatusDraft,
		CustomerID:          original.CustomerID,
		CustomerName:        original.CustomerName,
		CustomerType:        original.CustomerType,
		T24CustomerID:       original.T24CustomerID,
		InternalDepartment:  original.InternalDepartment,
		ExternalParty:       original.ExternalParty,
		StartDate:           newStart,
		EndDate:             newEnd,
		ContractValue:       original.ContractValue,
		Currency:            original.Currency,
		PaymentTerms:        original.PaymentTerms,
		RiskLevel:           original.RiskLevel,
		BusinessOwner:       original.BusinessOwner,
		PrimaryContact:      original.PrimaryContact,
		RelationshipManager: original.RelationshipManager,
		AutoRenewal:         original.AutoRenewal,
		ReminderDays:        original.ReminderDays,
		SourceSystem:        original.SourceSystem,
		IsActive:            true,
	}

	original.Status = model.StatusRenewed
	return renewed, nil
}

// Extend pushes the end date out. Shortening is rejected, and terminated or
// expired contracts are not editable at all.
func Extend(c *model.Contract, newEndDate time.Time) error {
	if err := EnsureEditable(c); err != nil {
		return err
	}
	if !c.EndDate.IsZero() && newEndDate.Before(c.EndDate) {
		return errNewEndBeforeCurrent
	}
	c.EndDate = newEndDate
	return nil
}

// EnsureEditable rejects mutations on contracts in a terminal-for-edit
// status.
func EnsureEditable(c *model.Contract) error {
	if c.Status == model.StatusTerminated || c.Status == model.StatusExpired {
		return notEditable(c.Status)
	}
	return nil
}

// EnsureDeletable rejects soft deletion of contracts still in force.
func EnsureDeletable(c *model.Contract) error {
	if c.Status == model.StatusActive {
		return notDeletable(c.Status)
	}
	return nil
}

// AppendNote appends a dated note to the existing compliance notes,
// newline-separated.
func AppendNote(existing, note string, now time.Time) string {
	dated := note + " (" + dateOnly(now).Format("2006-01-02") + ")"
	if strings.TrimSpace(existing) == "" {
		return dated
	}
	return existing + "\n" + dated
}
