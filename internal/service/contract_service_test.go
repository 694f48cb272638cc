package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
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

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fakeContractStore keeps contracts in memory and mirrors the repository's
// error contract: gorm.ErrRecordNotFound for missing rows,
// repository.ErrVersionConflict on stale saves, repository.ErrDuplicateNumber
// on number collisions.
type fakeContractStore struct {
	contracts map[uuid.UUID]*model.Contract
	saveErr   error
}

func newFakeContractStore() *fakeContractStore {
	return &fakeContractStore{contracts: make(map[uuid.UUID]*model.Contract)}
}

func (f *fakeContractStore) FindByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	c, ok := f.contracts[id]
	if !ok || !c.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeContractStore) FindAnyByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeContractStore) FindByNumber(_ context.Context, number string) (*model.Contract, error) {
	for _, c := range f.contracts {
		if c.ContractNumber == number && c.IsActive {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContractStore) Create(_ context.Context, c *model.Contract) error {
	for _, existing := range f.contracts {
		if existing.ContractNumber == c.ContractNumber {
			return repository.ErrDuplicateNumber
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = testNow
	c.UpdatedAt = testNow
	clone := *c
	f.contracts[c.ID] = &clone
	return nil
}

func (f *fakeContractStore) Save(_ context.Context, c *model.Contract) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	stored, ok := f.contracts[c.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != c.Version {
		return repository.ErrVersionConflict
	}
	c.Version++
	clone := *c
	f.contracts[c.ID] = &clone
	return nil
}

func (f *fakeContractStore) SaveRenewal(ctx context.Context, original, renewed *model.Contract) error {
	if err := f.Save(ctx, original); err != nil {
		return err
	}
	return f.Create(ctx, renewed)
}

func (f *fakeContractStore) ExistsByNumber(_ context.Context, number string) (bool, error) {
	for _, c := range f.contracts {
		if c.ContractNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeContractStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.contracts)), nil
}

func (f *fakeContractStore) ListActive(_ context.Context, _, _ int) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) Search(_ context.Context, _ string, _, _ int) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListByCustomer(_ context.Context, customerID string) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if c.CustomerID == customerID && c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) ListByDepartment(_ context.Context, _ string) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListByType(_ context.Context, _ uuid.UUID) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListByT24CustomerID(_ context.Context, _ string) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListBySourceSystem(_ context.Context, _ string) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListExpiringWithin(_ context.Context, days int) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if !c.IsActive {
			continue
		}
		snap := lifecycle.SnapshotOf(c)
		if lifecycle.ExpiringSoon(snap, testNow, days) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) ListExpired(_ context.Context) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if c.IsActive && lifecycle.HasExpired(lifecycle.SnapshotOf(c), testNow) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) ListCurrentlyActive(_ context.Context) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListRenewalsDue(_ context.Context, _ time.Time) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListNeedingCustomerSync(_ context.Context, staleBefore time.Time) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range f.contracts {
		if !c.IsActive {
			continue
		}
		if c.LastCustomerSync == nil || c.LastCustomerSync.Before(staleBefore) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) ListHighValue(_ context.Context, _ decimal.Decimal) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) ListByValueRange(_ context.Context, _, _ decimal.Decimal) ([]model.Contract, error) {
	return nil, nil
}

func (f *fakeContractStore) TotalValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range f.contracts {
		if c.IsActive && c.ContractValue != nil {
			total = total.Add(*c.ContractValue)
		}
	}
	return total, nil
}

func (f *fakeContractStore) TotalValueByStatus(_ context.Context, status model.ContractStatus) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range f.contracts {
		if c.IsActive && c.Status == status && c.ContractValue != nil {
			total = total.Add(*c.ContractValue)
		}
	}
	return total, nil
}

func (f *fakeContractStore) CountsByStatus(_ context.Context) ([]model.StatusCount, error) {
	counts := make(map[model.ContractStatus]int64)
	for _, c := range f.contracts {
		if c.IsActive {
			counts[c.Status]++
		}
	}
	var out []model.StatusCount
	for status, count := range counts {
		out = append(out, model.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func (f *fakeContractStore) CountsByDepartment(_ context.Context) ([]model.DepartmentCount, error) {
	return nil, nil
}

func (f *fakeContractStore) MonthlyCreationTrends(_ context.Context, _ time.Time) ([]model.MonthlyTrend, error) {
	return nil, nil
}

type fakeTypeStore struct {
	types map[uuid.UUID]*model.ContractType
}

func newFakeTypeStore() *fakeTypeStore {
	return &fakeTypeStore{types: make(map[uuid.UUID]*model.ContractType)}
}

func (f *fakeTypeStore) FindByID(_ context.Context, id uuid.UUID) (*model.ContractType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTypeStore) FindByCode(_ context.Context, typeCode string) (*model.ContractType, error) {
	for _, t := range f.types {
		if t.TypeCode == typeCode {
			clone := *t
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTypeStore) Create(_ context.Context, t *model.ContractType) error {
	t.ID = uuid.New()
	clone := *t
	f.types[t.ID] = &clone
	return nil
}

func (f *fakeTypeStore) Save(_ context.Context, t *model.ContractType) error {
	if _, ok := f.types[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *t
	f.types[t.ID] = &clone
	return nil
}

func (f *fakeTypeStore) ExistsByCode(_ context.Context, typeCode string) (bool, error) {
	for _, t := range f.types {
		if t.TypeCode == typeCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTypeStore) ListActive(_ context.Context) ([]model.ContractType, error) {
	var out []model.ContractType
	for _, t := range f.types {
		if t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTypeStore) ListByCategory(_ context.Context, category model.ContractCategory) ([]model.ContractType, error) {
	var out []model.ContractType
	for _, t := range f.types {
		if t.IsActive && t.Category == category {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeBanking struct {
	customers map[string]model.Customer
}

func (f *fakeBanking) GetCustomerByID(_ context.Context, customerID string) (*model.Customer, error) {
	customer, ok := f.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", integration.ErrCustomerNotFound, customerID)
	}
	return &customer, nil
}

func (f *fakeBanking) SearchCustomersByName(_ context.Context, name string) ([]model.Customer, error) {
	var out []model.Customer
	for _, customer := range f.customers {
		if strings.Contains(strings.ToLower(customer.CustomerName), strings.ToLower(name)) {
			out = append(out, customer)
		}
	}
	return out, nil
}

func (f *fakeBanking) IsCustomerValid(_ context.Context, customerID string) (bool, error) {
	customer, ok := f.customers[customerID]
	return ok && customer.IsActive, nil
}

func (f *fakeBanking) SystemName() string { return "FAKE" }

type testEnv struct {
	svc       *ContractService
	store     *fakeContractStore
	types     *fakeTypeStore
	banking   *fakeBanking
	typeID    uuid.UUID
	principal model.Principal
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeContractStore()
	types := newFakeTypeStore()
	banking := &fakeBanking{customers: map[string]model.Customer{
		"CUS-12345": {
			CustomerID:          "CUS-12345",
			CustomerName:        "Microsoft Maroc SARL",
			CustomerType:        "CORPORATE",
			T24CustomerID:       "T24-CUS-001",
			RelationshipManager: "Fatima El Alami",
			SourceSystem:        "MOCK",
			IsActive:            true,
		},
		"CUS-99999": {
			CustomerID:   "CUS-99999",
			CustomerName: "Dormant Holdings",
			IsActive:     false,
		},
	}}

	contractType := &model.ContractType{
		TypeCode:            "SOFTWARE_LICENSE",
		TypeName:            "Software License",
		Category:            model.CategoryITServices,
		DefaultReminderDays: 60,
		RiskCategory:        model.RiskCategoryHigh,
		IsActive:            true,
	}
	if err := types.Create(context.Background(), contractType); err != nil {
		t.Fatalf("seed contract type: %v", err)
	}

	cfg := &config.Config{
		Contracts: config.ContractsConfig{
			DefaultCurrency:      "MAD",
			DefaultReminderDays:  30,
			RenewalLookaheadDays: 90,
			SyncStaleDays:        30,
		},
	}

	svc := NewContractService(store, types, banking, cfg, zerolog.Nop())
	svc.now = func() time.Time { return testNow }

	return &testEnv{
		svc:     svc,
		store:   store,
		types:   types,
		banking: banking,
		typeID:  contractType.ID,
		principal: model.Principal{
			UserID:   uuid.New(),
			Username: "k.alaoui",
			Role:     model.RoleContractManager,
		},
	}
}

func (e *testEnv) createInput() CreateContractInput {
	return CreateContractInput{
		Title:              "Core Banking Platform License",
		ContractTypeID:     e.typeID,
		CustomerID:         "CUS-12345",
		InternalDepartment: "IT",
		ExternalParty:      "Microsoft Maroc SARL",
		StartDate:          date(2026, 4, 1),
		EndDate:            date(2027, 3, 31),
	}
}

func (e *testEnv) mustCreate(t *testing.T) *model.Contract {
	t.Helper()
	contract, err := e.svc.Create(context.Background(), e.createInput(), e.principal)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return contract
}

func TestCreateAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	if contract.Status != model.StatusDraft {
		t.Errorf("status = %s, want DRAFT", contract.Status)
	}
	if contract.ContractNumber != "BP-2026-SOFTWARE_LICENSE-0001" {
		t.Errorf("contract number = %q", contract.ContractNumber)
	}
	if contract.Currency != "MAD" {
		t.Errorf("currency = %q, want MAD", contract.Currency)
	}
	if contract.ReminderDays != 60 {
		t.Errorf("reminder days = %d, want the type default 60", contract.ReminderDays)
	}
	if contract.CustomerName != "Microsoft Maroc SARL" {
		t.Errorf("customer name = %q, want denormalized from core banking", contract.CustomerName)
	}
	if contract.SourceSystem != "T24" {
		t.Errorf("source system = %q, want T24 when the customer carries a T24 id", contract.SourceSystem)
	}
	if contract.RelationshipManager != "Fatima El Alami" {
		t.Errorf("relationship manager = %q", contract.RelationshipManager)
	}
	if contract.CreatedBy != "k.alaoui" {
		t.Errorf("created by = %q", contract.CreatedBy)
	}
}

func TestCreateUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	in := env.createInput()
	in.CustomerID = "CUS-00000"

	_, err := env.svc.Create(context.Background(), in, env.principal)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("error = %v, want ErrCustomerNotFound", err)
	}
}

func TestCreateInactiveCustomer(t *testing.T) {
	env := newTestEnv(t)
	in := env.createInput()
	in.CustomerID = "CUS-99999"

	_, err := env.svc.Create(context.Background(), in, env.principal)
	if !errors.Is(err, ErrCustomerInvalid) {
		t.Errorf("error = %v, want ErrCustomerInvalid", err)
	}
}

func TestCreateDuplicateNumber(t *testing.T) {
	env := newTestEnv(t)
	first := env.mustCreate(t)

	in := env.createInput()
	in.ContractNumber = first.ContractNumber
	_, err := env.svc.Create(context.Background(), in, env.principal)
	if !errors.Is(err, ErrContractNumberExists) {
		t.Errorf("error = %v, want ErrContractNumberExists", err)
	}
}

func TestGeneratedNumbersDoNotRepeat(t *testing.T) {
	env := newTestEnv(t)
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		contract := env.mustCreate(t)
		if seen[contract.ContractNumber] {
			t.Fatalf("number %s assigned twice", contract.ContractNumber)
		}
		seen[contract.ContractNumber] = true

		unique, err := env.svc.IsContractNumberUnique(context.Background(), contract.ContractNumber)
		if err != nil {
			t.Fatalf("IsContractNumberUnique() error = %v", err)
		}
		if unique {
			t.Errorf("assigned number %s still reported unique", contract.ContractNumber)
		}
	}
}

func TestUpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	value := decimal.NewFromInt(500000)
	updated, err := env.svc.Update(context.Background(), contract.ID, UpdateContractInput{
		Title:         "Core Banking Platform License v2",
		ContractValue: &value,
	}, env.principal)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Title != "Core Banking Platform License v2" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.ContractValue == nil || !updated.ContractValue.Equal(value) {
		t.Error("contract value not applied")
	}
	if updated.InternalDepartment != "IT" {
		t.Errorf("untouched field changed: department = %q", updated.InternalDepartment)
	}
}

func TestUpdateTerminatedRejected(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	env.store.contracts[contract.ID].Status = model.StatusTerminated

	_, err := env.svc.Update(context.Background(), contract.ID, UpdateContractInput{Title: "x"}, env.principal)
	if !errors.Is(err, lifecycle.ErrNotEditable) {
		t.Errorf("error = %v, want ErrNotEditable", err)
	}
}

func TestUpdateConcurrentModification(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	env.store.saveErr = repository.ErrVersionConflict
	_, err := env.svc.Update(context.Background(), contract.ID, UpdateContractInput{Title: "x"}, env.principal)
	if !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("error = %v, want ErrConcurrentModification", err)
	}
}

func TestDeleteActiveRejected(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	if _, err := env.svc.Activate(context.Background(), contract.ID, env.principal); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	err := env.svc.Delete(context.Background(), contract.ID, env.principal)
	if !errors.Is(err, lifecycle.ErrNotDeletable) {
		t.Errorf("error = %v, want ErrNotDeletable", err)
	}
}

func TestDeleteAndRestore(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	if err := env.svc.Delete(context.Background(), contract.ID, env.principal); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := env.svc.GetByID(context.Background(), contract.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted contract should be invisible, error = %v", err)
	}

	restored, err := env.svc.Restore(context.Background(), contract.ID, env.principal)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !restored.IsActive {
		t.Error("restored contract should be active again")
	}
	if _, err := env.svc.GetByID(context.Background(), contract.ID); err != nil {
		t.Errorf("restored contract should be visible, error = %v", err)
	}
}

func TestRenewAssignsFreshNumber(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)
	if _, err := env.svc.Activate(context.Background(), contract.ID, env.principal); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	renewed, err := env.svc.Renew(context.Background(), contract.ID, date(2027, 4, 1), date(2028, 3, 31), env.principal)
	if err != nil {
		t.Fatalf("Renew() error = %v", err)
	}

	if renewed.ContractNumber == "" || renewed.ContractNumber == contract.ContractNumber {
		t.Errorf("successor number = %q, want a fresh one", renewed.ContractNumber)
	}
	if renewed.Status != model.StatusDraft {
		t.Errorf("successor status = %s, want DRAFT", renewed.Status)
	}

	original, err := env.svc.GetByID(context.Background(), contract.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if original.Status != model.StatusRenewed {
		t.Errorf("original status = %s, want RENEWED", original.Status)
	}
}

func TestSyncCustomerData(t *testing.T) {
	env := newTestEnv(t)
	contract := env.mustCreate(t)

	customer := env.banking.customers["CUS-12345"]
	customer.CustomerName = "Microsoft Maroc SA"
	env.banking.customers["CUS-12345"] = customer

	synced, err := env.svc.SyncCustomerData(context.Background(), contract.ID, env.principal)
	if err != nil {
		t.Fatalf("SyncCustomerData() error = %v", err)
	}
	if synced.CustomerName != "Microsoft Maroc SA" {
		t.Errorf("customer name = %q, want refreshed value", synced.CustomerName)
	}
	if synced.LastCustomerSync == nil || !synced.LastCustomerSync.Equal(testNow) {
		t.Error("last customer sync timestamp not stamped")
	}
}

func TestBulkSyncCountsFailures(t *testing.T) {
	env := newTestEnv(t)
	healthy := env.mustCreate(t)
	_ = healthy

	orphan := env.mustCreate(t)
	env.store.contracts[orphan.ID].CustomerID = "CUS-GONE"

	result, err := env.svc.BulkSyncCustomerData(context.Background(), env.principal)
	if err != nil {
		t.Fatalf("BulkSyncCustomerData() error = %v", err)
	}
	if result.Synced != 1 {
		t.Errorf("synced = %d, want 1", result.Synced)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
}

func TestStatistics(t *testing.T) {
	env := newTestEnv(t)

	in := env.createInput()
	value := decimal.NewFromInt(1000000)
	in.ContractValue = &value
	contract, err := env.svc.Create(context.Background(), in, env.principal)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := env.svc.Activate(context.Background(), contract.ID, env.principal); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	in2 := env.createInput()
	draftValue := decimal.NewFromInt(250000)
	in2.ContractValue = &draftValue
	if _, err := env.svc.Create(context.Background(), in2, env.principal); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stats, err := env.svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if stats.TotalContracts != 2 {
		t.Errorf("total = %d, want 2", stats.TotalContracts)
	}
	if stats.ActiveContracts != 1 {
		t.Errorf("active = %d, want 1", stats.ActiveContracts)
	}
	if !stats.TotalValue.Equal(decimal.NewFromInt(1250000)) {
		t.Errorf("total value = %s, want 1250000", stats.TotalValue)
	}
	if !stats.ActiveValue.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("active value = %s, want 1000000", stats.ActiveValue)
	}
}

func TestExpirationReport(t *testing.T) {
	env := newTestEnv(t)

	in := env.createInput()
	in.StartDate = date(2025, 4, 1)
	in.EndDate = date(2026, 4, 10) // 26 days out
	value := decimal.NewFromInt(750000)
	in.ContractValue = &value
	if _, err := env.svc.Create(context.Background(), in, env.principal); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	report, err := env.svc.ExpirationReport(context.Background(), 30)
	if err != nil {
		t.Fatalf("ExpirationReport() error = %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(report.Rows))
	}

	row := report.Rows[0]
	if row.DaysUntilExpiration != 26 {
		t.Errorf("days until expiration = %d, want 26", row.DaysUntilExpiration)
	}
	if !row.NeedsReminder {
		t.Error("26 days out with a 60 day reminder window should need a reminder")
	}
	if row.FormattedValue != "MAD 750,000.00" {
		t.Errorf("formatted value = %q", row.FormattedValue)
	}
	if row.TypeName != "Software License" {
		t.Errorf("type name = %q", row.TypeName)
	}
}

func TestContractTypeRiskDefault(t *testing.T) {
	env := newTestEnv(t)
	typeSvc := NewContractTypeService(env.types, zerolog.Nop())

	created, err := typeSvc.Create(context.Background(), CreateContractTypeInput{
		TypeCode: "CONSULTING",
		TypeName: "Consulting Services",
		Category: model.CategoryProfessionalServices,
	}, env.principal)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.RiskCategory != model.RiskCategoryMedium {
		t.Errorf("risk category = %s, want MEDIUM_RISK for professional services", created.RiskCategory)
	}
	if created.DefaultDurationMonths != 12 || created.DefaultReminderDays != 30 {
		t.Errorf("defaults = %d months / %d days, want 12 / 30", created.DefaultDurationMonths, created.DefaultReminderDays)
	}
}

func TestContractTypeCodeValidation(t *testing.T) {
	env := newTestEnv(t)
	typeSvc := NewContractTypeService(env.types, zerolog.Nop())

	for _, code := range []string{"lowercase", "HAS SPACE", "HAS-DASH", ""} {
		_, err := typeSvc.Create(context.Background(), CreateContractTypeInput{
			TypeCode: code,
			TypeName: "Bad Code",
			Category: model.CategoryOther,
		}, env.principal)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("code %q: error = %v, want ErrInvalidInput", code, err)
		}
	}

	_, err := typeSvc.Create(context.Background(), CreateContractTypeInput{
		TypeCode: "SOFTWARE_LICENSE",
		TypeName: "Duplicate",
		Category: model.CategoryITServices,
	}, env.principal)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate code: error = %v, want ErrInvalidInput", err)
	}
}
