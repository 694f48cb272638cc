package http

import (
	"time"

	"github.com/bpdigital/contract-repository/internal/lifecycle"
	"github.com/bpdigital/contract-repository/internal/model"
)

// contractResponse carries the stored fields plus the derived attributes,
// all evaluated through the lifecycle engine against the same instant so
// detail, list and report views agree.
type contractResponse struct {
	ID                 string  `json:"id"`
	ContractNumber     string  `json:"contract_number"`
	Title              string  `json:"title"`
	Description        string  `json:"description,omitempty"`
	ContractTypeID     string  `json:"contract_type_id"`
	TypeCode           string  `json:"type_code,omitempty"`
	TypeName           string  `json:"type_name,omitempty"`
	Status             string  `json:"status"`
	StatusDisplay      string  `json:"status_display"`
	CustomerID         string  `json:"customer_id"`
	CustomerName       string  `json:"customer_name"`
	CustomerType       string  `json:"customer_type,omitempty"`
	T24CustomerID      string  `json:"t24_customer_id,omitempty"`
	InternalDepartment string  `json:"internal_department"`
	ExternalParty      string  `json:"external_party"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	RenewalDate        *string `json:"renewal_date,omitempty"`
	ContractValue      *string `json:"contract_value,omitempty"`
	Currency           string  `json:"currency"`
	PaymentTerms       string  `json:"payment_terms,omitempty"`
	RiskLevel          string  `json:"risk_level,omitempty"`
	BusinessOwner      string  `json:"business_owner,omitempty"`
	PrimaryContact     string  `json:"primary_contact,omitempty"`
	RelationshipMgr    string  `json:"relationship_manager,omitempty"`
	AutoRenewal        bool    `json:"auto_renewal"`
	ReminderDays       int     `json:"reminder_days"`
	InternalNotes      string  `json:"internal_notes,omitempty"`
	ComplianceNotes    string  `json:"compliance_notes,omitempty"`
	SourceSystem       string  `json:"source_system,omitempty"`
	IsActive           bool    `json:"is_active"`
	CreatedBy          string  `json:"created_by,omitempty"`
	CreatedAt          string  `json:"created_at"`
	ModifiedBy         string  `json:"modified_by,omitempty"`
	UpdatedAt          string  `json:"updated_at"`
	Version            int64   `json:"version"`

	CurrentlyActive      bool   `json:"currently_active"`
	HasExpired           bool   `json:"has_expired"`
	DaysUntilExpiration  int64  `json:"days_until_expiration"`
	ContractDurationDays int64  `json:"contract_duration_days"`
	NeedsRenewalReminder bool   `json:"needs_renewal_reminder"`
	FormattedValue       string `json:"formatted_value"`
}

func toContractResponse(c *model.Contract, now time.Time) contractResponse {
	snap := lifecycle.SnapshotOf(c)

	resp := contractResponse{
		ID:                 c.ID.String(),
		ContractNumber:     c.ContractNumber,
		Title:              c.Title,
		Description:        c.Description,
		ContractTypeID:     c.ContractTypeID.String(),
		Status:             string(c.Status),
		StatusDisplay:      c.Status.DisplayName(),
		CustomerID:         c.CustomerID,
		CustomerName:       c.CustomerName,
		CustomerType:       c.CustomerType,
		T24CustomerID:      c.T24CustomerID,
		InternalDepartment: c.InternalDepartment,
		ExternalParty:      c.ExternalParty,
		StartDate:          c.StartDate.Format("2006-01-02"),
		EndDate:            c.EndDate.Format("2006-01-02"),
		Currency:           c.Currency,
		PaymentTerms:       c.PaymentTerms,
		RiskLevel:          string(c.RiskLevel),
		BusinessOwner:      c.BusinessOwner,
		PrimaryContact:     c.PrimaryContact,
		RelationshipMgr:    c.RelationshipManager,
		AutoRenewal:        c.AutoRenewal,
		ReminderDays:       c.ReminderDays,
		InternalNotes:      c.InternalNotes,
		ComplianceNotes:    c.ComplianceNotes,
		SourceSystem:       c.SourceSystem,
		IsActive:           c.IsActive,
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		ModifiedBy:         c.ModifiedBy,
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
		Version:            c.Version,

		CurrentlyActive:      lifecycle.CurrentlyActive(snap, now),
		HasExpired:           lifecycle.HasExpired(snap, now),
		DaysUntilExpiration:  lifecycle.DaysUntilExpiration(snap, now),
		ContractDurationDays: lifecycle.DurationDays(snap),
		NeedsRenewalReminder: lifecycle.NeedsRenewalReminder(snap, now),
		FormattedValue:       lifecycle.FormattedValue(snap),
	}
	if c.ContractType != nil {
		resp.TypeCode = c.ContractType.TypeCode
		resp.TypeName = c.ContractType.TypeName
	}
	if c.RenewalDate != nil {
		formatted := c.RenewalDate.Format("2006-01-02")
		resp.RenewalDate = &formatted
	}
	if c.ContractValue != nil {
		value := c.ContractValue.StringFixed(2)
		resp.ContractValue = &value
	}
	return resp
}

func toContractResponses(contracts []model.Contract, now time.Time) []contractResponse {
	responses := make([]contractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, toContractResponse(&contracts[i], now))
	}
	return responses
}

type contractTypeResponse struct {
	ID                    string `json:"id"`
	TypeCode              string `json:"type_code"`
	TypeName              string `json:"type_name"`
	Description           string `json:"description,omitempty"`
	Category              string `json:"category"`
	CategoryDisplay       string `json:"category_display"`
	DefaultDurationMonths int    `json:"default_duration_months"`
	DefaultReminderDays   int    `json:"default_reminder_days"`
	RequiresApproval      bool   `json:"requires_approval"`
	AutoRenewalAllowed    bool   `json:"auto_renewal_allowed"`
	FinancialImpact       bool   `json:"financial_impact"`
	RiskCategory          string `json:"risk_category"`
	RiskCategoryDisplay   string `json:"risk_category_display"`
	ApprovalWorkflow      string `json:"approval_workflow,omitempty"`
	RequiredDocuments     string `json:"required_documents,omitempty"`
	DisplayOrder          int    `json:"display_order"`
	IsActive              bool   `json:"is_active"`
	Version               int64  `json:"version"`
}

func toContractTypeResponse(t *model.ContractType) contractTypeResponse {
	return contractTypeResponse{
		ID:                    t.ID.String(),
		TypeCode:              t.TypeCode,
		TypeName:              t.TypeName,
		Description:           t.Description,
		Category:              string(t.Category),
		CategoryDisplay:       t.Category.DisplayName(),
		DefaultDurationMonths: t.DefaultDurationMonths,
		DefaultReminderDays:   t.DefaultReminderDays,
		RequiresApproval:      t.RequiresApproval,
		AutoRenewalAllowed:    t.AutoRenewalAllowed,
		FinancialImpact:       t.FinancialImpact,
		RiskCategory:          string(t.RiskCategory),
		RiskCategoryDisplay:   t.RiskCategory.DisplayName(),
		ApprovalWorkflow:      t.ApprovalWorkflow,
		RequiredDocuments:     t.RequiredDocuments,
		DisplayOrder:          t.DisplayOrder,
		IsActive:              t.IsActive,
		Version:               t.Version,
	}
}

type customerResponse struct {
	CustomerID          string `json:"customer_id"`
	CustomerName        string `json:"customer_name"`
	CustomerType        string `json:"customer_type"`
	ContactPerson       string `json:"contact_person,omitempty"`
	ContactEmail        string `json:"contact_email,omitempty"`
	ContactPhone        string `json:"contact_phone,omitempty"`
	City                string `json:"city,omitempty"`
	Country             string `json:"country,omitempty"`
	RelationshipManager string `json:"relationship_manager,omitempty"`
	T24CustomerID       string `json:"t24_customer_id,omitempty"`
	SourceSystem        string `json:"source_system,omitempty"`
	Sector              string `json:"sector,omitempty"`
	IsActive            bool   `json:"is_active"`
}

func toCustomerResponse(customer *model.Customer) customerResponse {
	return customerResponse{
		CustomerID:          customer.CustomerID,
		CustomerName:        customer.CustomerName,
		CustomerType:        customer.CustomerType,
		ContactPerson:       customer.ContactPerson,
		ContactEmail:        customer.ContactEmail,
		ContactPhone:        customer.ContactPhone,
		City:                customer.City,
		Country:             customer.Country,
		RelationshipManager: customer.RelationshipManager,
		T24CustomerID:       customer.T24CustomerID,
		SourceSystem:        customer.SourceSystem,
		Sector:              customer.Sector,
		IsActive:            customer.IsActive,
	}
}
