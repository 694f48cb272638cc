package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bpdigital/contract-repository/internal/model"
)

// ContractStore is the storage contract the service orchestrates against.
// Implementations return gorm.ErrRecordNotFound for missing rows,
// repository.ErrVersionConflict on optimistic-lock failures and
// repository.ErrDuplicateNumber on contract number collisions.
type ContractStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	FindAnyByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	FindByNumber(ctx context.Context, number string) (*model.Contract, error)
	Create(ctx context.Context, c *model.Contract) error
	Save(ctx context.Context, c *model.Contract) error
	SaveRenewal(ctx context.Context, original, renewed *model.Contract) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int64, error)

	ListActive(ctx context.Context, limit, offset int) ([]model.Contract, error)
	Search(ctx context.Context, term string, limit, offset int) ([]model.Contract, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Contract, error)
	ListByDepartment(ctx context.Context, department string) ([]model.Contract, error)
	ListByType(ctx context.Context, contractTypeID uuid.UUID) ([]model.Contract, error)
	ListByT24CustomerID(ctx context.Context, t24CustomerID string) ([]model.Contract, error)
	ListBySourceSystem(ctx context.Context, sourceSystem string) ([]model.Contract, error)

	ListExpiringWithin(ctx context.Context, days int) ([]model.Contract, error)
	ListExpired(ctx context.Context) ([]model.Contract, error)
	ListCurrentlyActive(ctx context.Context) ([]model.Contract, error)
	ListRenewalsDue(ctx context.Context, by time.Time) ([]model.Contract, error)
	ListNeedingCustomerSync(ctx context.Context, staleBefore time.Time) ([]model.Contract, error)

	ListHighValue(ctx context.Context, threshold decimal.Decimal) ([]model.Contract, error)
	ListByValueRange(ctx context.Context, minValue, maxValue decimal.Decimal) ([]model.Contract, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	TotalValueByStatus(ctx context.Context, status model.ContractStatus) (decimal.Decimal, error)

	CountsByStatus(ctx context.Context) ([]model.StatusCount, error)
	CountsByDepartment(ctx context.Context) ([]model.DepartmentCount, error)
	MonthlyCreationTrends(ctx context.Context, from time.Time) ([]model.MonthlyTrend, error)
}

// ContractTypeStore is the reference-data side of storage.
type ContractTypeStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContractType, error)
	FindByCode(ctx context.Context, typeCode string) (*model.ContractType, error)
	Create(ctx context.Context, t *model.ContractType) error
	Save(ctx context.Context, t *model.ContractType) error
	ExistsByCode(ctx context.Context, typeCode string) (bool, error)
	ListActive(ctx context.Context) ([]model.ContractType, error)
	ListByCategory(ctx context.Context, category model.ContractCategory) ([]model.ContractType, error)
}
