package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bpdigital/contract-repository/internal/model"
)

type ContractTypeRepository struct {
	db *gorm.DB
}

func NewContractTypeRepository(db *gorm.DB) *ContractTypeRepository {
	return &ContractTypeRepository{db: db}
}

const contractTypeColumns = `
	id,
	type_code,
	type_name,
	description,
	category,
	default_duration_months,
	default_reminder_days,
	requires_approval,
	auto_renewal_allowed,
	financial_impact,
	risk_category,
	approval_workflow,
	required_documents,
	display_order,
	is_active,
	created_by,
	created_at,
	modified_by,
	updated_at,
	version`

func (r *ContractTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContractType, error) {
	var row model.ContractType
	err := r.db.WithContext(ctx).Raw(
		"SELECT"+contractTypeColumns+" FROM contract_types WHERE id = ? AND is_active = true LIMIT 1", id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ContractTypeRepository) FindByCode(ctx context.Context, typeCode string) (*model.ContractType, error) {
	var row model.ContractType
	err := r.db.WithContext(ctx).Raw(
		"SELECT"+contractTypeColumns+" FROM contract_types WHERE type_code = ? AND is_active = true LIMIT 1", typeCode,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ContractTypeRepository) Create(ctx context.Context, t *model.ContractType) error {
	var out model.ContractType
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contract_types (
			type_code, type_name, description, category,
			default_duration_months, default_reminder_days,
			requires_approval, auto_renewal_allowed, financial_impact,
			risk_category, approval_workflow, required_documents,
			display_order, is_active, created_by, modified_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING`+contractTypeColumns,
		t.TypeCode, t.TypeName, t.Description, t.Category,
		t.DefaultDurationMonths, t.DefaultReminderDays,
		t.RequiresApproval, t.AutoRenewalAllowed, t.FinancialImpact,
		t.RiskCategory, t.ApprovalWorkflow, t.RequiredDocuments,
		t.DisplayOrder, t.IsActive, t.CreatedBy, t.ModifiedBy,
	).Scan(&out).Error
	if err != nil {
		return err
	}
	*t = out
	return nil
}

func (r *ContractTypeRepository) Save(ctx context.Context, t *model.ContractType) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE contract_types SET
			type_name = ?,
			description = ?,
			default_duration_months = ?,
			default_reminder_days = ?,
			requires_approval = ?,
			auto_renewal_allowed = ?,
			financial_impact = ?,
			risk_category = ?,
			approval_workflow = ?,
			required_documents = ?,
			display_order = ?,
			is_active = ?,
			modified_by = ?,
			updated_at = NOW(),
			version = version + 1
		WHERE id = ? AND version = ?
	`,
		t.TypeName, t.Description,
		t.DefaultDurationMonths, t.DefaultReminderDays,
		t.RequiresApproval, t.AutoRenewalAllowed, t.FinancialImpact,
		t.RiskCategory, t.ApprovalWorkflow, t.RequiredDocuments,
		t.DisplayOrder, t.IsActive, t.ModifiedBy,
		t.ID, t.Version,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists bool
		if err := r.db.WithContext(ctx).Raw(
			`SELECT EXISTS (SELECT 1 FROM contract_types WHERE id = ?)`, t.ID,
		).Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			return ErrVersionConflict
		}
		return gorm.ErrRecordNotFound
	}
	t.Version++
	return nil
}

func (r *ContractTypeRepository) ExistsByCode(ctx context.Context, typeCode string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM contract_types WHERE type_code = ?)`, typeCode,
	).Scan(&exists).Error
	return exists, err
}

func (r *ContractTypeRepository) ListActive(ctx context.Context) ([]model.ContractType, error) {
	var rows []model.ContractType
	err := r.db.WithContext(ctx).Raw(
		"SELECT" + contractTypeColumns + " FROM contract_types WHERE is_active = true ORDER BY display_order ASC, type_name ASC",
	).Scan(&rows).Error
	return rows, err
}

func (r *ContractTypeRepository) ListByCategory(ctx context.Context, category model.ContractCategory) ([]model.ContractType, error) {
	var rows []model.ContractType
	err := r.db.WithContext(ctx).Raw(
		"SELECT"+contractTypeColumns+" FROM contract_types WHERE category = ? AND is_active = true ORDER BY display_order ASC, type_name ASC",
		category,
	).Scan(&rows).Error
	return rows, err
}
