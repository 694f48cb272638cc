package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bpdigital/contract-repository/internal/model"
)

var typeCodePattern = regexp.MustCompile(`^[A-Z_]+$`)

// ContractTypeService manages the reference data classifying contracts.
// Type codes are unique and immutable once created.
type ContractTypeService struct {
	types ContractTypeStore
	log   zerolog.Logger
}

func NewContractTypeService(types ContractTypeStore, log zerolog.Logger) *ContractTypeService {
	return &ContractTypeService{types: types, log: log}
}

type CreateContractTypeInput struct {
	TypeCode              string
	TypeName              string
	Description           string
	Category              model.ContractCategory
	DefaultDurationMonths int
	DefaultReminderDays   int
	RequiresApproval      bool
	AutoRenewalAllowed    bool
	FinancialImpact       bool
	RiskCategory          model.RiskCategory
	ApprovalWorkflow      string
	RequiredDocuments     string
	DisplayOrder          int
}

type UpdateContractTypeInput struct {
	TypeName              string
	Description           string
	DefaultDurationMonths *int
	DefaultReminderDays   *int
	RequiresApproval      *bool
	AutoRenewalAllowed    *bool
	FinancialImpact       *bool
	RiskCategory          model.RiskCategory
	ApprovalWorkflow      string
	RequiredDocuments     string
	DisplayOrder          *int
}

// Create validates the reference record and applies the category-based risk
// default when no risk category was supplied.
func (s *ContractTypeService) Create(ctx context.Context, in CreateContractTypeInput, principal model.Principal) (*model.ContractType, error) {
	code := strings.TrimSpace(in.TypeCode)
	if code == "" {
		return nil, fmt.Errorf("%w: type code is required", ErrInvalidInput)
	}
	if !typeCodePattern.MatchString(code) {
		return nil, fmt.Errorf("%w: type code must contain only uppercase letters and underscores", ErrInvalidInput)
	}
	if strings.TrimSpace(in.TypeName) == "" {
		return nil, fmt.Errorf("%w: type name is required", ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	if in.DefaultDurationMonths != 0 && (in.DefaultDurationMonths < 1 || in.DefaultDurationMonths > 1200) {
		return nil, fmt.Errorf("%w: default duration must be between 1 and 1200 months", ErrInvalidInput)
	}
	if in.DefaultReminderDays != 0 && (in.DefaultReminderDays < 1 || in.DefaultReminderDays > 365) {
		return nil, fmt.Errorf("%w: default reminder days must be between 1 and 365", ErrInvalidInput)
	}

	exists, err := s.types.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: type code %s already in use", ErrInvalidInput, code)
	}

	riskCategory := in.RiskCategory
	if riskCategory == "" {
		riskCategory = model.DefaultRiskCategory(in.Category)
	}
	durationMonths := in.DefaultDurationMonths
	if durationMonths == 0 {
		durationMonths = 12
	}
	reminderDays := in.DefaultReminderDays
	if reminderDays == 0 {
		reminderDays = 30
	}

	contractType := &model.ContractType{
		TypeCode:              code,
		TypeName:              in.TypeName,
		Description:           in.Description,
		Category:              in.Category,
		DefaultDurationMonths: durationMonths,
		DefaultReminderDays:   reminderDays,
		RequiresApproval:      in.RequiresApproval,
		AutoRenewalAllowed:    in.AutoRenewalAllowed,
		FinancialImpact:       in.FinancialImpact,
		RiskCategory:          riskCategory,
		ApprovalWorkflow:      in.ApprovalWorkflow,
		RequiredDocuments:     in.RequiredDocuments,
		DisplayOrder:          in.DisplayOrder,
		IsActive:              true,
		CreatedBy:             principal.Username,
		ModifiedBy:            principal.Username,
	}

	if err := s.types.Create(ctx, contractType); err != nil {
		return nil, err
	}

	s.log.Info().Str("type_code", contractType.TypeCode).Msg("contract type created")
	return contractType, nil
}

// Update changes policy fields; the type code itself is immutable.
func (s *ContractTypeService) Update(ctx context.Context, id uuid.UUID, in UpdateContractTypeInput, principal model.Principal) (*model.ContractType, error) {
	contractType, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.TypeName) != "" {
		contractType.TypeName = in.TypeName
	}
	if strings.TrimSpace(in.Description) != "" {
		contractType.Description = in.Description
	}
	if in.DefaultDurationMonths != nil {
		if *in.DefaultDurationMonths < 1 || *in.DefaultDurationMonths > 1200 {
			return nil, fmt.Errorf("%w: default duration must be between 1 and 1200 months", ErrInvalidInput)
		}
		contractType.DefaultDurationMonths = *in.DefaultDurationMonths
	}
	if in.DefaultReminderDays != nil {
		if *in.DefaultReminderDays < 1 || *in.DefaultReminderDays > 365 {
			return nil, fmt.Errorf("%w: default reminder days must be between 1 and 365", ErrInvalidInput)
		}
		contractType.DefaultReminderDays = *in.DefaultReminderDays
	}
	if in.RequiresApproval != nil {
		contractType.RequiresApproval = *in.RequiresApproval
	}
	if in.AutoRenewalAllowed != nil {
		contractType.AutoRenewalAllowed = *in.AutoRenewalAllowed
	}
	if in.FinancialImpact != nil {
		contractType.FinancialImpact = *in.FinancialImpact
	}
	if in.RiskCategory != "" {
		contractType.RiskCategory = in.RiskCategory
	}
	if strings.TrimSpace(in.ApprovalWorkflow) != "" {
		contractType.ApprovalWorkflow = in.ApprovalWorkflow
	}
	if strings.TrimSpace(in.RequiredDocuments) != "" {
		contractType.RequiredDocuments = in.RequiredDocuments
	}
	if in.DisplayOrder != nil {
		contractType.DisplayOrder = *in.DisplayOrder
	}

	contractType.ModifiedBy = principal.Username
	if err := s.types.Save(ctx, contractType); err != nil {
		return nil, err
	}
	return contractType, nil
}

func (s *ContractTypeService) GetByID(ctx context.Context, id uuid.UUID) (*model.ContractType, error) {
	contractType, err := s.types.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract type %s", ErrNotFound, id)
		}
		return nil, err
	}
	return contractType, nil
}

func (s *ContractTypeService) GetByCode(ctx context.Context, typeCode string) (*model.ContractType, error) {
	contractType, err := s.types.FindByCode(ctx, typeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract type %s", ErrNotFound, typeCode)
		}
		return nil, err
	}
	return contractType, nil
}

func (s *ContractTypeService) ListActive(ctx context.Context) ([]model.ContractType, error) {
	return s.types.ListActive(ctx)
}

func (s *ContractTypeService) ListByCategory(ctx context.Context, category model.ContractCategory) ([]model.ContractType, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	return s.types.ListByCategory(ctx, category)
}

// Deactivate soft-deletes the reference record.
func (s *ContractTypeService) Deactivate(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	contractType, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	contractType.IsActive = false
	contractType.ModifiedBy = principal.Username
	return s.types.Save(ctx, contractType)
}
