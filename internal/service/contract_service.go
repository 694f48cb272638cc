package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bpdigital/contract-repository/internal/config"
	"github.com/bpdigital/contract-repository/internal/integration"
	"github.com/bpdigital/contract-repository/internal/lifecycle"
	"github.com/bpdigital/contract-repository/internal/model"
	"github.com/bpdigital/contract-repository/internal/repository"
)

// ContractService implements the contract lifecycle operations. Each
// operation loads one record, mutates it in memory through the lifecycle
// package and persists the final validated state; nothing is written on a
// failed guard.
type ContractService struct {
	contracts ContractStore
	types     ContractTypeStore
	banking   integration.CoreBanking
	cfg       *config.Config
	log       zerolog.Logger
	now       func() time.Time
}

func NewContractService(
	contracts ContractStore,
	types ContractTypeStore,
	banking integration.CoreBanking,
	cfg *config.Config,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contracts: contracts,
		types:     types,
		banking:   banking,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

type CreateContractInput struct {
	ContractNumber     string
	Title              string
	Description        string
	ContractTypeID     uuid.UUID
	CustomerID         string
	InternalDepartment string
	ExternalParty      string
	StartDate          time.Time
	EndDate            time.Time
	RenewalDate        *time.Time
	ContractValue      *decimal.Decimal
	Currency           string
	PaymentTerms       string
	RiskLevel          model.RiskLevel
	BusinessOwner      string
	PrimaryContact     string
	AutoRenewal        *bool
	ReminderDays       *int
	InternalNotes      string
	ComplianceNotes    string
}

// UpdateContractInput is a partial update: only non-nil / non-empty fields
// overwrite the stored record.
type UpdateContractInput struct {
	Title              string
	Description        string
	ContractTypeID     *uuid.UUID
	InternalDepartment string
	ExternalParty      string
	StartDate          *time.Time
	EndDate            *time.Time
	RenewalDate        *time.Time
	ContractValue      *decimal.Decimal
	Currency           string
	PaymentTerms       string
	RiskLevel          model.RiskLevel
	BusinessOwner      string
	PrimaryContact     string
	AutoRenewal        *bool
	ReminderDays       *int
	InternalNotes      string
	ComplianceNotes    string
}

type BulkSyncResult struct {
	Synced int
	Failed int
}

// Create validates the request, resolves the customer against core banking
// and the contract type, assigns a contract number when none was supplied
// and persists a new DRAFT contract.
func (s *ContractService) Create(ctx context.Context, in CreateContractInput, principal model.Principal) (*model.Contract, error) {
	now := s.now()

	if err := lifecycle.ValidateForCreation(lifecycle.CreationInput{
		Title:          in.Title,
		ContractTypeID: in.ContractTypeID,
		CustomerID:     in.CustomerID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}, now); err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateRenewalDate(in.RenewalDate, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateValue(in.ContractValue); err != nil {
		return nil, err
	}

	customer, err := s.lookupCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	contractType, err := s.getContractType(ctx, in.ContractTypeID)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(in.ContractNumber)
	if number != "" {
		exists, err := s.contracts.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrContractNumberExists, number)
		}
	} else {
		number, err = s.GenerateContractNumber(ctx, contractType.TypeCode)
		if err != nil {
			return nil, err
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = s.cfg.Contracts.DefaultCurrency
	}
	reminderDays := contractType.EffectiveReminderDays()
	if in.ReminderDays != nil {
		reminderDays = *in.ReminderDays
	}
	autoRenewal := false
	if in.AutoRenewal != nil {
		autoRenewal = *in.AutoRenewal
	}

	contract := &model.Contract{
		ContractNumber:      number,
		Title:               in.Title,
		Description:         in.Description,
		ContractTypeID:      contractType.ID,
		ContractType:        contractType,
		Status:              model.StatusDraft,
		CustomerID:          customer.CustomerID,
		CustomerName:        customer.CustomerName,
		CustomerType:        customer.CustomerType,
		T24CustomerID:       customer.T24CustomerID,
		InternalDepartment:  in.InternalDepartment,
		ExternalParty:       in.ExternalParty,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		RenewalDate:         in.RenewalDate,
		ContractValue:       in.ContractValue,
		Currency:            currency,
		PaymentTerms:        in.PaymentTerms,
		RiskLevel:           in.RiskLevel,
		BusinessOwner:       in.BusinessOwner,
		PrimaryContact:      in.PrimaryContact,
		RelationshipManager: customer.RelationshipManager,
		AutoRenewal:         autoRenewal,
		ReminderDays:        reminderDays,
		InternalNotes:       in.InternalNotes,
		ComplianceNotes:     in.ComplianceNotes,
		SourceSystem:        determineSourceSystem(customer),
		IsActive:            true,
		CreatedBy:           principal.Username,
		ModifiedBy:          principal.Username,
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}

	s.log.Info().
		Str("contract_number", contract.ContractNumber).
		Str("customer_id", contract.CustomerID).
		Msg("contract created")
	return contract, nil
}

// Update applies a partial update. Terminated and expired contracts are not
// editable; the date pair is re-validated whenever both dates end up set.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, in UpdateContractInput, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.EnsureEditable(contract); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Title) != "" {
		contract.Title = in.Title
	}
	if strings.TrimSpace(in.Description) != "" {
		contract.Description = in.Description
	}
	if in.ContractTypeID != nil {
		contractType, err := s.getContractType(ctx, *in.ContractTypeID)
		if err != nil {
			return nil, err
		}
		contract.ContractTypeID = contractType.ID
		contract.ContractType = contractType
	}
	if strings.TrimSpace(in.InternalDepartment) != "" {
		contract.InternalDepartment = in.InternalDepartment
	}
	if strings.TrimSpace(in.ExternalParty) != "" {
		contract.ExternalParty = in.ExternalParty
	}
	if in.StartDate != nil {
		contract.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		contract.EndDate = *in.EndDate
	}
	if in.RenewalDate != nil {
		contract.RenewalDate = in.RenewalDate
	}
	if in.ContractValue != nil {
		if err := lifecycle.ValidateValue(in.ContractValue); err != nil {
			return nil, err
		}
		contract.ContractValue = in.ContractValue
	}
	if strings.TrimSpace(in.Currency) != "" {
		contract.Currency = in.Currency
	}
	if strings.TrimSpace(in.PaymentTerms) != "" {
		contract.PaymentTerms = in.PaymentTerms
	}
	if in.RiskLevel != "" {
		contract.RiskLevel = in.RiskLevel
	}
	if strings.TrimSpace(in.BusinessOwner) != "" {
		contract.BusinessOwner = in.BusinessOwner
	}
	if strings.TrimSpace(in.PrimaryContact) != "" {
		contract.PrimaryContact = in.PrimaryContact
	}
	if in.AutoRenewal != nil {
		contract.AutoRenewal = *in.AutoRenewal
	}
	if in.ReminderDays != nil {
		contract.ReminderDays = *in.ReminderDays
	}
	if strings.TrimSpace(in.InternalNotes) != "" {
		contract.InternalNotes = in.InternalNotes
	}
	if strings.TrimSpace(in.ComplianceNotes) != "" {
		contract.ComplianceNotes = in.ComplianceNotes
	}

	if !contract.StartDate.IsZero() && !contract.EndDate.IsZero() {
		if err := lifecycle.ValidateDatePair(contract.StartDate, contract.EndDate, s.now()); err != nil {
			return nil, err
		}
	}
	if err := lifecycle.ValidateRenewalDate(contract.RenewalDate, contract.StartDate, contract.EndDate); err != nil {
		return nil, err
	}

	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	return s.findByID(ctx, id)
}

func (s *ContractService) GetByNumber(ctx context.Context, number string) (*model.Contract, error) {
	contract, err := s.contracts.FindByNumber(ctx, number)
	if err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

func (s *ContractService) ListActive(ctx context.Context, limit, offset int) ([]model.Contract, error) {
	return s.contracts.ListActive(ctx, limit, offset)
}

func (s *ContractService) Search(ctx context.Context, term string, limit, offset int) ([]model.Contract, error) {
	return s.contracts.Search(ctx, term, limit, offset)
}

func (s *ContractService) ListByCustomer(ctx context.Context, customerID string) ([]model.Contract, error) {
	return s.contracts.ListByCustomer(ctx, customerID)
}

func (s *ContractService) ListByDepartment(ctx context.Context, department string) ([]model.Contract, error) {
	return s.contracts.ListByDepartment(ctx, department)
}

func (s *ContractService) ListByType(ctx context.Context, contractTypeID uuid.UUID) ([]model.Contract, error) {
	return s.contracts.ListByType(ctx, contractTypeID)
}

func (s *ContractService) ListByT24CustomerID(ctx context.Context, t24CustomerID string) ([]model.Contract, error) {
	return s.contracts.ListByT24CustomerID(ctx, t24CustomerID)
}

func (s *ContractService) ListBySourceSystem(ctx context.Context, sourceSystem string) ([]model.Contract, error) {
	return s.contracts.ListBySourceSystem(ctx, sourceSystem)
}

// Delete soft-deletes: the row stays for audit, the active flag flips.
// Contracts still in force must be terminated first.
func (s *ContractService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if err := lifecycle.EnsureDeletable(contract); err != nil {
		return err
	}
	contract.SoftDelete()
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return s.mapStorageError(err)
	}
	s.log.Info().Str("contract_number", contract.ContractNumber).Msg("contract soft deleted")
	return nil
}

func (s *ContractService) Restore(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.contracts.FindAnyByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageError(err)
	}
	contract.Restore()
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

// Activate moves a complete draft contract into force.
func (s *ContractService) Activate(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Activate(contract); err != nil {
		return nil, err
	}
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	s.log.Info().Str("contract_number", contract.ContractNumber).Msg("contract activated")
	return contract, nil
}

func (s *ContractService) Suspend(ctx context.Context, id uuid.UUID, reason string, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Suspend(contract, reason, s.now()); err != nil {
		return nil, err
	}
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	s.log.Info().Str("contract_number", contract.ContractNumber).Str("reason", reason).Msg("contract suspended")
	return contract, nil
}

func (s *ContractService) Terminate(ctx context.Context, id uuid.UUID, reason string, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Terminate(contract, reason, s.now()); err != nil {
		return nil, err
	}
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	s.log.Info().Str("contract_number", contract.ContractNumber).Str("reason", reason).Msg("contract terminated")
	return contract, nil
}

// Renew creates the successor draft with a fresh contract number and marks
// the original RENEWED; both records are persisted in one transaction.
func (s *ContractService) Renew(ctx context.Context, id uuid.UUID, newStartDate, newEndDate time.Time, principal model.Principal) (*model.Contract, error) {
	original, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contractType, err := s.getContractType(ctx, original.ContractTypeID)
	if err != nil {
		return nil, err
	}

	renewed, err := lifecycle.Renew(original, newStartDate, newEndDate, s.now())
	if err != nil {
		return nil, err
	}

	number, err := s.GenerateContractNumber(ctx, contractType.TypeCode)
	if err != nil {
		return nil, err
	}
	renewed.ContractNumber = number
	renewed.CreatedBy = principal.Username
	renewed.ModifiedBy = principal.Username
	original.ModifiedBy = principal.Username

	if err := s.contracts.SaveRenewal(ctx, original, renewed); err != nil {
		return nil, s.mapStorageError(err)
	}

	s.log.Info().
		Str("original_number", original.ContractNumber).
		Str("renewed_number", renewed.ContractNumber).
		Msg("contract renewed")
	return renewed, nil
}

// Extend pushes the end date out without creating a successor record.
func (s *ContractService) Extend(ctx context.Context, id uuid.UUID, newEndDate time.Time, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Extend(contract, newEndDate); err != nil {
		return nil, err
	}
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

func (s *ContractService) UpdateValue(ctx context.Context, id uuid.UUID, newValue decimal.Decimal, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.EnsureEditable(contract); err != nil {
		return nil, err
	}
	if err := lifecycle.ValidateValue(&newValue); err != nil {
		return nil, err
	}
	contract.ContractValue = &newValue
	contract.ModifiedBy = principal.Username
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

func (s *ContractService) ExpiringSoon(ctx context.Context, days int) ([]model.Contract, error) {
	return s.contracts.ListExpiringWithin(ctx, days)
}

func (s *ContractService) Expired(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.ListExpired(ctx)
}

func (s *ContractService) CurrentlyActive(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.ListCurrentlyActive(ctx)
}

func (s *ContractService) RenewalsDue(ctx context.Context) ([]model.Contract, error) {
	by := s.now().AddDate(0, 0, s.cfg.Contracts.RenewalLookaheadDays)
	return s.contracts.ListRenewalsDue(ctx, by)
}

func (s *ContractService) HighValue(ctx context.Context, threshold decimal.Decimal) ([]model.Contract, error) {
	return s.contracts.ListHighValue(ctx, threshold)
}

func (s *ContractService) ByValueRange(ctx context.Context, minValue, maxValue decimal.Decimal) ([]model.Contract, error) {
	return s.contracts.ListByValueRange(ctx, minValue, maxValue)
}

// SyncCustomerData refreshes the denormalized customer fields from core
// banking.
func (s *ContractService) SyncCustomerData(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := s.lookupCustomer(ctx, contract.CustomerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	contract.CustomerName = customer.CustomerName
	contract.CustomerType = customer.CustomerType
	contract.T24CustomerID = customer.T24CustomerID
	contract.RelationshipManager = customer.RelationshipManager
	contract.LastCustomerSync = &now
	contract.ModifiedBy = principal.Username

	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

// BulkSyncCustomerData walks contracts with stale customer data
// sequentially. Per-record failures are logged and counted; the batch never
// rolls back already-synced records.
func (s *ContractService) BulkSyncCustomerData(ctx context.Context, principal model.Principal) (BulkSyncResult, error) {
	staleBefore := s.now().AddDate(0, 0, -s.cfg.Contracts.SyncStaleDays)
	contracts, err := s.contracts.ListNeedingCustomerSync(ctx, staleBefore)
	if err != nil {
		return BulkSyncResult{}, err
	}

	var result BulkSyncResult
	for i := range contracts {
		if _, err := s.SyncCustomerData(ctx, contracts[i].ID, principal); err != nil {
			s.log.Error().Err(err).
				Str("contract_number", contracts[i].ContractNumber).
				Msg("customer sync failed")
			result.Failed++
			continue
		}
		result.Synced++
	}

	s.log.Info().Int("synced", result.Synced).Int("failed", result.Failed).Msg("bulk customer sync completed")
	return result, nil
}

func (s *ContractService) Statistics(ctx context.Context) (*model.ContractStatistics, error) {
	total, err := s.contracts.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.contracts.CountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	expired, err := s.contracts.ListExpired(ctx)
	if err != nil {
		return nil, err
	}
	expiring, err := s.contracts.ListExpiringWithin(ctx, s.cfg.Contracts.RenewalLookaheadDays)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.contracts.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	activeValue, err := s.contracts.TotalValueByStatus(ctx, model.StatusActive)
	if err != nil {
		return nil, err
	}

	stats := &model.ContractStatistics{
		TotalContracts:   total,
		ExpiredContracts: int64(len(expired)),
		ExpiringSoon:     int64(len(expiring)),
		TotalValue:       totalValue,
		ActiveValue:      activeValue,
	}
	for _, c := range counts {
		if c.Status == model.StatusActive {
			stats.ActiveContracts = c.Count
		}
	}
	return stats, nil
}

func (s *ContractService) CountsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return s.contracts.CountsByStatus(ctx)
}

func (s *ContractService) CountsByDepartment(ctx context.Context) ([]model.DepartmentCount, error) {
	return s.contracts.CountsByDepartment(ctx)
}

func (s *ContractService) MonthlyCreationTrends(ctx context.Context, from time.Time) ([]model.MonthlyTrend, error) {
	return s.contracts.MonthlyCreationTrends(ctx, from)
}

// ExpirationReport evaluates every contract expiring within the threshold
// against a single generation time, so a row's derived fields match what a
// detail view at that instant would show.
func (s *ContractService) ExpirationReport(ctx context.Context, days int) (*model.ExpirationReport, error) {
	contracts, err := s.contracts.ListExpiringWithin(ctx, days)
	if err != nil {
		return nil, err
	}

	now := s.now()
	report := &model.ExpirationReport{
		GeneratedAt:   now,
		ThresholdDays: days,
		Rows:          make([]model.ExpirationReportRow, 0, len(contracts)),
	}
	for i := range contracts {
		c := &contracts[i]
		snap := lifecycle.SnapshotOf(c)
		typeName := ""
		if c.ContractType != nil {
			typeName = c.ContractType.TypeName
		}
		report.Rows = append(report.Rows, model.ExpirationReportRow{
			ContractNumber:      c.ContractNumber,
			Title:               c.Title,
			TypeName:            typeName,
			CustomerName:        c.CustomerName,
			InternalDepartment:  c.InternalDepartment,
			Status:              c.Status,
			EndDate:             c.EndDate,
			DaysUntilExpiration: lifecycle.DaysUntilExpiration(snap, now),
			NeedsReminder:       lifecycle.NeedsRenewalReminder(snap, now),
			FormattedValue:      lifecycle.FormattedValue(snap),
		})
	}
	return report, nil
}

// GenerateContractNumber builds BP-<year>-<typeCode>-<seq>, probing until an
// unused number is found. The probe is best effort; the unique index on
// contract_number is the actual guarantee under concurrent creation.
func (s *ContractService) GenerateContractNumber(ctx context.Context, typeCode string) (string, error) {
	year := s.now().Year()
	prefix := fmt.Sprintf("BP-%d-%s-", year, typeCode)

	count, err := s.contracts.Count(ctx)
	if err != nil {
		return "", err
	}

	seq := count + 1
	for {
		number := fmt.Sprintf("%s%04d", prefix, seq)
		exists, err := s.contracts.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		seq++
	}
}

func (s *ContractService) IsContractNumberUnique(ctx context.Context, number string) (bool, error) {
	exists, err := s.contracts.ExistsByNumber(ctx, number)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *ContractService) findByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageError(err)
	}
	return contract, nil
}

func (s *ContractService) getContractType(ctx context.Context, id uuid.UUID) (*model.ContractType, error) {
	contractType, err := s.types.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract type %s", ErrNotFound, id)
		}
		return nil, err
	}
	return contractType, nil
}

func (s *ContractService) lookupCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	customer, err := s.banking.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, integration.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrCustomerInvalid, customerID)
	}
	return customer, nil
}

func (s *ContractService) mapStorageError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: contract", ErrNotFound)
	case errors.Is(err, repository.ErrVersionConflict):
		return fmt.Errorf("%w", ErrConcurrentModification)
	case errors.Is(err, repository.ErrDuplicateNumber):
		return fmt.Errorf("%w", ErrContractNumberExists)
	default:
		return err
	}
}

func determineSourceSystem(customer *model.Customer) string {
	if strings.TrimSpace(customer.T24CustomerID) != "" {
		return "T24"
	}
	if strings.TrimSpace(customer.SourceSystem) != "" {
		return customer.SourceSystem
	}
	return "MANUAL"
}
