package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bpdigital/contract-repository/internal/model"
)

var (
	// ErrVersionConflict is returned when an optimistic-lock save finds a
	// different version than the one loaded.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicateNumber is returned when the contract_number unique index
	// rejects an insert.
	ErrDuplicateNumber = errors.New("duplicate contract number")
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `
	c.id,
	c.contract_number,
	c.title,
	c.description,
	c.contract_type_id,
	c.status,
	c.customer_id,
	c.customer_name,
	c.customer_type,
	c.t24_customer_id,
	c.internal_department,
	c.external_party,
	c.start_date,
	c.end_date,
	c.renewal_date,
	c.contract_value,
	c.currency,
	c.payment_terms,
	c.risk_level,
	c.business_owner,
	c.primary_contact,
	c.relationship_manager,
	c.auto_renewal,
	c.reminder_days,
	c.internal_notes,
	c.compliance_notes,
	c.source_system,
	c.last_customer_sync,
	c.is_active,
	c.created_by,
	c.created_at,
	c.modified_by,
	c.updated_at,
	c.version,
	t.type_code,
	t.type_name,
	t.category AS type_category,
	t.default_reminder_days AS type_reminder_days,
	t.default_duration_months AS type_duration_months`

const contractFrom = `
	FROM contracts c
	JOIN contract_types t ON t.id = c.contract_type_id`

type contractRow struct {
	ID                  uuid.UUID
	ContractNumber      string
	Title               string
	Description         string
	ContractTypeID      uuid.UUID
	Status              string
	CustomerID          string
	CustomerName        string
	CustomerType        string
	T24CustomerID       string
	InternalDepartment  string
	ExternalParty       string
	StartDate           time.Time
	EndDate             time.Time
	RenewalDate         *time.Time
	ContractValue       *decimal.Decimal
	Currency            string
	PaymentTerms        string
	RiskLevel           string
	BusinessOwner       string
	PrimaryContact      string
	RelationshipManager string
	AutoRenewal         bool
	ReminderDays        int
	InternalNotes       string
	ComplianceNotes     string
	SourceSystem        string
	LastCustomerSync    *time.Time
	IsActive            bool
	CreatedBy           string
	CreatedAt           time.Time
	ModifiedBy          string
	UpdatedAt           time.Time
	Version             int64
	TypeCode            string
	TypeName            string
	TypeCategory        string
	TypeReminderDays    int
	TypeDurationMonths  int
}

func (r contractRow) toModel() model.Contract {
	return model.Contract{
		ID:             r.ID,
		ContractNumber: r.ContractNumber,
		Title:          r.Title,
		Description:    r.Description,
		ContractTypeID: r.ContractTypeID,
		ContractType: &model.ContractType{
			ID:                    r.ContractTypeID,
			TypeCode:              r.TypeCode,
			TypeName:              r.TypeName,
			Category:              model.ContractCategory(r.TypeCategory),
			DefaultReminderDays:   r.TypeReminderDays,
			DefaultDurationMonths: r.TypeDurationMonths,
		},
		Status:              model.ContractStatus(r.Status),
		CustomerID:          r.CustomerID,
		CustomerName:        r.CustomerName,
		CustomerType:        r.CustomerType,
		T24CustomerID:       r.T24CustomerID,
		InternalDepartment:  r.InternalDepartment,
		ExternalParty:       r.ExternalParty,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		RenewalDate:         r.RenewalDate,
		ContractValue:       r.ContractValue,
		Currency:            r.Currency,
		PaymentTerms:        r.PaymentTerms,
		RiskLevel:           model.RiskLevel(r.RiskLevel),
		BusinessOwner:       r.BusinessOwner,
		PrimaryContact:      r.PrimaryContact,
		RelationshipManager: r.RelationshipManager,
		AutoRenewal:         r.AutoRenewal,
		ReminderDays:        r.ReminderDays,
		InternalNotes:       r.InternalNotes,
		ComplianceNotes:     r.ComplianceNotes,
		SourceSystem:        r.SourceSystem,
		LastCustomerSync:    r.LastCustomerSync,
		IsActive:            r.IsActive,
		CreatedBy:           r.CreatedBy,
		CreatedAt:           r.CreatedAt,
		ModifiedBy:          r.ModifiedBy,
		UpdatedAt:           r.UpdatedAt,
		Version:             r.Version,
	}
}

func (r *ContractRepository) queryOne(ctx context.Context, where string, args ...interface{}) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(
		"SELECT"+contractColumns+contractFrom+" WHERE "+where+" LIMIT 1", args...,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	contract := row.toModel()
	return &contract, nil
}

func (r *ContractRepository) queryMany(ctx context.Context, tail string, args ...interface{}) ([]model.Contract, error) {
	var rows []contractRow
	err := r.db.WithContext(ctx).Raw(
		"SELECT"+contractColumns+contractFrom+" "+tail, args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	return r.queryOne(ctx, "c.id = ? AND c.is_active = true", id)
}

func (r *ContractRepository) FindAnyByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	return r.queryOne(ctx, "c.id = ?", id)
}

func (r *ContractRepository) FindByNumber(ctx context.Context, number string) (*model.Contract, error) {
	return r.queryOne(ctx, "c.contract_number = ? AND c.is_active = true", number)
}

func (r *ContractRepository) Create(ctx context.Context, c *model.Contract) error {
	return r.createTx(ctx, r.db, c)
}

func (r *ContractRepository) createTx(ctx context.Context, tx *gorm.DB, c *model.Contract) error {
	var inserted struct {
		ID        uuid.UUID
		CreatedAt time.Time
		UpdatedAt time.Time
		Version   int64
	}
	err := tx.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			contract_number, title, description, contract_type_id, status,
			customer_id, customer_name, customer_type, t24_customer_id,
			internal_department, external_party,
			start_date, end_date, renewal_date,
			contract_value, currency, payment_terms,
			risk_level, business_owner, primary_contact, relationship_manager,
			auto_renewal, reminder_days, internal_notes, compliance_notes,
			source_system, last_customer_sync,
			is_active, created_by, modified_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at, version
	`,
		c.ContractNumber, c.Title, c.Description, c.ContractTypeID, c.Status,
		c.CustomerID, c.CustomerName, c.CustomerType, c.T24CustomerID,
		c.InternalDepartment, c.ExternalParty,
		c.StartDate, c.EndDate, c.RenewalDate,
		c.ContractValue, c.Currency, c.PaymentTerms,
		nullableString(string(c.RiskLevel)), c.BusinessOwner, c.PrimaryContact, c.RelationshipManager,
		c.AutoRenewal, c.ReminderDays, c.InternalNotes, c.ComplianceNotes,
		c.SourceSystem, c.LastCustomerSync,
		c.IsActive, c.CreatedBy, c.ModifiedBy,
	).Scan(&inserted).Error
	if err != nil {
		return mapInsertError(err)
	}
	c.ID = inserted.ID
	c.CreatedAt = inserted.CreatedAt
	c.UpdatedAt = inserted.UpdatedAt
	c.Version = inserted.Version
	return nil
}

// Save updates the row guarded by the version counter. A zero-row update on
// an existing record means another writer got there first.
func (r *ContractRepository) Save(ctx context.Context, c *model.Contract) error {
	return r.saveTx(ctx, r.db, c)
}

func (r *ContractRepository) saveTx(ctx context.Context, tx *gorm.DB, c *model.Contract) error {
	result := tx.WithContext(ctx).Exec(`
		UPDATE contracts SET
			title = ?,
			description = ?,
			contract_type_id = ?,
			status = ?,
			customer_id = ?,
			customer_name = ?,
			customer_type = ?,
			t24_customer_id = ?,
			internal_department = ?,
			external_party = ?,
			start_date = ?,
			end_date = ?,
			renewal_date = ?,
			contract_value = ?,
			currency = ?,
			payment_terms = ?,
			risk_level = ?,
			business_owner = ?,
			primary_contact = ?,
			relationship_manager = ?,
			auto_renewal = ?,
			reminder_days = ?,
			internal_notes = ?,
			compliance_notes = ?,
			source_system = ?,
			last_customer_sync = ?,
			is_active = ?,
			modified_by = ?,
			updated_at = NOW(),
			version = version + 1
		WHERE id = ? AND version = ?
	`,
		c.Title, c.Description, c.ContractTypeID, c.Status,
		c.CustomerID, c.CustomerName, c.CustomerType, c.T24CustomerID,
		c.InternalDepartment, c.ExternalParty,
		c.StartDate, c.EndDate, c.RenewalDate,
		c.ContractValue, c.Currency, c.PaymentTerms,
		nullableString(string(c.RiskLevel)), c.BusinessOwner, c.PrimaryContact, c.RelationshipManager,
		c.AutoRenewal, c.ReminderDays, c.InternalNotes, c.ComplianceNotes,
		c.SourceSystem, c.LastCustomerSync,
		c.IsActive, c.ModifiedBy,
		c.ID, c.Version,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists bool
		if err := tx.WithContext(ctx).Raw(
			`SELECT EXISTS (SELECT 1 FROM contracts WHERE id = ?)`, c.ID,
		).Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			return ErrVersionConflict
		}
		return gorm.ErrRecordNotFound
	}
	c.Version++
	return nil
}

// SaveRenewal persists the RENEWED original and its successor draft as one
// logical operation.
func (r *ContractRepository) SaveRenewal(ctx context.Context, original, renewed *model.Contract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.saveTx(ctx, tx, original); err != nil {
			return err
		}
		return r.createTx(ctx, tx, renewed)
	})
}

func (r *ContractRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM contracts WHERE contract_number = ?)`, number,
	).Scan(&exists).Error
	return exists, err
}

func (r *ContractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM contracts`).Scan(&count).Error
	return count, err
}

func (r *ContractRepository) ListActive(ctx context.Context, limit, offset int) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.is_active = true ORDER BY c.created_at DESC LIMIT ? OFFSET ?",
		normalizeLimit(limit), offset)
}

func (r *ContractRepository) Search(ctx context.Context, term string, limit, offset int) ([]model.Contract, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	return r.queryMany(ctx, `
		WHERE c.is_active = true AND (
			LOWER(c.contract_number) LIKE ?
			OR LOWER(c.title) LIKE ?
			OR LOWER(c.customer_name) LIKE ?
			OR LOWER(c.external_party) LIKE ?
			OR LOWER(c.internal_department) LIKE ?
		)
		ORDER BY c.created_at DESC LIMIT ? OFFSET ?`,
		pattern, pattern, pattern, pattern, pattern, normalizeLimit(limit), offset)
}

func (r *ContractRepository) ListByCustomer(ctx context.Context, customerID string) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.customer_id = ? AND c.is_active = true ORDER BY c.created_at DESC", customerID)
}

func (r *ContractRepository) ListByDepartment(ctx context.Context, department string) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.internal_department = ? AND c.is_active = true ORDER BY c.created_at DESC", department)
}

func (r *ContractRepository) ListByType(ctx context.Context, contractTypeID uuid.UUID) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.contract_type_id = ? AND c.is_active = true ORDER BY c.created_at DESC", contractTypeID)
}

func (r *ContractRepository) ListByT24CustomerID(ctx context.Context, t24CustomerID string) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.t24_customer_id = ? AND c.is_active = true ORDER BY c.created_at DESC", t24CustomerID)
}

func (r *ContractRepository) ListBySourceSystem(ctx context.Context, sourceSystem string) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.source_system = ? AND c.is_active = true ORDER BY c.created_at DESC", sourceSystem)
}

func (r *ContractRepository) ListExpiringWithin(ctx context.Context, days int) ([]model.Contract, error) {
	return r.queryMany(ctx, `
		WHERE c.end_date BETWEEN CURRENT_DATE AND CURRENT_DATE + ?
			AND c.status = 'ACTIVE' AND c.is_active = true
		ORDER BY c.end_date ASC`, days)
}

func (r *ContractRepository) ListExpired(ctx context.Context) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.end_date < CURRENT_DATE AND c.is_active = true ORDER BY c.end_date DESC")
}

func (r *ContractRepository) ListCurrentlyActive(ctx context.Context) ([]model.Contract, error) {
	return r.queryMany(ctx, `
		WHERE c.status = 'ACTIVE' AND c.is_active = true
			AND c.start_date <= CURRENT_DATE AND c.end_date >= CURRENT_DATE
		ORDER BY c.end_date ASC`)
}

func (r *ContractRepository) ListRenewalsDue(ctx context.Context, by time.Time) ([]model.Contract, error) {
	return r.queryMany(ctx, `
		WHERE c.renewal_date IS NOT NULL AND c.renewal_date <= ?
			AND c.status = 'ACTIVE' AND c.is_active = true
		ORDER BY c.renewal_date ASC`, by)
}

func (r *ContractRepository) ListNeedingCustomerSync(ctx context.Context, staleBefore time.Time) ([]model.Contract, error) {
	return r.queryMany(ctx, `
		WHERE c.is_active = true
			AND (c.last_customer_sync IS NULL OR c.last_customer_sync < ?)
		ORDER BY c.last_customer_sync ASC NULLS FIRST`, staleBefore)
}

func (r *ContractRepository) ListHighValue(ctx context.Context, threshold decimal.Decimal) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.contract_value >= ? AND c.is_active = true ORDER BY c.contract_value DESC", threshold)
}

func (r *ContractRepository) ListByValueRange(ctx context.Context, minValue, maxValue decimal.Decimal) ([]model.Contract, error) {
	return r.queryMany(ctx,
		"WHERE c.contract_value BETWEEN ? AND ? AND c.is_active = true ORDER BY c.contract_value DESC",
		minValue, maxValue)
}

func (r *ContractRepository) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(contract_value), 0) FROM contracts WHERE is_active = true`,
	).Scan(&total).Error
	return total, err
}

func (r *ContractRepository) TotalValueByStatus(ctx context.Context, status model.ContractStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(contract_value), 0) FROM contracts WHERE status = ? AND is_active = true`, status,
	).Scan(&total).Error
	return total, err
}

func (r *ContractRepository) CountsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	var counts []model.StatusCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM contracts
		WHERE is_active = true
		GROUP BY status
		ORDER BY status
	`).Scan(&counts).Error
	return counts, err
}

func (r *ContractRepository) CountsByDepartment(ctx context.Context) ([]model.DepartmentCount, error) {
	var counts []model.DepartmentCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT internal_department AS department, COUNT(*) AS count
		FROM contracts
		WHERE is_active = true
		GROUP BY internal_department
		ORDER BY count DESC
	`).Scan(&counts).Error
	return counts, err
}

func (r *ContractRepository) MonthlyCreationTrends(ctx context.Context, from time.Time) ([]model.MonthlyTrend, error) {
	var trends []model.MonthlyTrend
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(YEAR FROM created_at)::int AS year,
			EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*) AS count
		FROM contracts
		WHERE created_at >= ? AND is_active = true
		GROUP BY year, month
		ORDER BY year, month
	`, from).Scan(&trends).Error
	return trends, err
}

func mapInsertError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") && strings.Contains(msg, "contract_number") {
		return ErrDuplicateNumber
	}
	return err
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 100
	}
	return limit
}
