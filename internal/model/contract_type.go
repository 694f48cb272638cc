package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractCategory string

const (
	CategoryITServices           ContractCategory = "IT_SERVICES"
	CategoryVendorServices       ContractCategory = "VENDOR_SERVICES"
	CategoryProfessionalServices ContractCategory = "PROFESSIONAL_SERVICES"
	CategoryFacilityManagement   ContractCategory = "FACILITY_MANAGEMENT"
	CategoryBankingServices      ContractCategory = "BANKING_SERVICES"
	CategoryLegalServices        ContractCategory = "LEGAL_SERVICES"
	CategoryHumanResources       ContractCategory = "HUMAN_RESOURCES"
	CategoryMarketingServices    ContractCategory = "MARKETING_SERVICES"
	CategoryInsurance            ContractCategory = "INSURANCE"
	CategoryRealEstate           ContractCategory = "REAL_ESTATE"
	CategoryOther                ContractCategory = "OTHER"
)

var categoryDisplayNames = map[ContractCategory]string{
	CategoryITServices:           "IT & Technology Services",
	CategoryVendorServices:       "Vendor & Supplier Services",
	CategoryProfessionalServices: "Professional Services",
	CategoryFacilityManagement:   "Facility Management",
	CategoryBankingServices:      "Banking & Financial Services",
	CategoryLegalServices:        "Legal Services",
	CategoryHumanResources:       "Human Resources",
	CategoryMarketingServices:    "Marketing & Communications",
	CategoryInsurance:            "Insurance & Risk Management",
	CategoryRealEstate:           "Real Estate & Property",
	CategoryOther:                "Other Services",
}

func (c ContractCategory) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c ContractCategory) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

type RiskCategory string

const (
	RiskCategoryLow      RiskCategory = "LOW_RISK"
	RiskCategoryMedium   RiskCategory = "MEDIUM_RISK"
	RiskCategoryHigh     RiskCategory = "HIGH_RISK"
	RiskCategoryCritical RiskCategory = "CRITICAL_RISK"
)

func (r RiskCategory) DisplayName() string {
	switch r {
	case RiskCategoryLow:
		return "Low Risk"
	case RiskCategoryMedium:
		return "Medium Risk"
	case RiskCategoryHigh:
		return "High Risk"
	case RiskCategoryCritical:
		return "Critical Risk"
	default:
		return string(r)
	}
}

// DefaultRiskCategory maps a contract category to the risk bucket assigned
// when a contract type is created without one.
func DefaultRiskCategory(category ContractCategory) RiskCategory {
	switch category {
	case CategoryITServices, CategoryBankingServices:
		return RiskCategoryHigh
	case CategoryProfessionalServices, CategoryLegalServices:
		return RiskCategoryMedium
	case CategoryFacilityManagement, CategoryMarketingServices:
		return RiskCategoryLow
	case CategoryInsurance:
		return RiskCategoryCritical
	default:
		return RiskCategoryMedium
	}
}

// ContractType is reference data classifying contracts and carrying default
// policy. TypeCode is unique and immutable after creation.
type ContractType struct {
	ID                    uuid.UUID
	TypeCode              string
	TypeName              string
	Description           string
	Category              ContractCategory
	DefaultDurationMonths int
	DefaultReminderDays   int
	RequiresApproval      bool
	AutoRenewalAllowed    bool
	FinancialImpact       bool
	RiskCategory          RiskCategory
	ApprovalWorkflow      string
	RequiredDocuments     string
	DisplayOrder          int
	IsActive              bool
	CreatedBy             string
	CreatedAt             time.Time
	ModifiedBy            string
	UpdatedAt             time.Time
	Version               int64
}

func (t *ContractType) EffectiveReminderDays() int {
	if t.DefaultReminderDays > 0 {
		return t.DefaultReminderDays
	}
	return 30
}

func (t *ContractType) EffectiveDurationMonths() int {
	if t.DefaultDurationMonths > 0 {
		return t.DefaultDurationMonths
	}
	return 12
}

func (t *ContractType) HighRisk() bool {
	return t.RiskCategory == RiskCategoryHigh || t.RiskCategory == RiskCategoryCritical
}

func (t *ContractType) FullDisplayName() string {
	return t.TypeName + " (" + t.Category.DisplayName() + ")"
}
