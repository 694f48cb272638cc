package integration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bpdigital/contract-repository/internal/model"
)

// MockCoreBanking serves seeded customer data when the T24/Evolan systems
// are not reachable. Selected via INTEGRATION_CORE_BANKING=mock.
type MockCoreBanking struct {
	customers map[string]model.Customer
	log       zerolog.Logger
}

func NewMockCoreBanking(log zerolog.Logger) *MockCoreBanking {
	now := time.Now()
	customers := map[string]model.Customer{
		"CUS-12345": {
			CustomerID:          "CUS-12345",
			CustomerName:        "Microsoft Maroc SARL",
			CustomerType:        "CORPORATE",
			ContactPerson:       "Ahmed Benjelloun",
			ContactEmail:        "ahmed.benjelloun@microsoft.ma",
			ContactPhone:        "+212 522 123 456",
			Address:             "Twin Center, Boulevard Zerktouni",
			City:                "Casablanca",
			Country:             "Morocco",
			RelationshipManager: "Fatima El Alami",
			AccountManager:      "Youssef Sekkouri",
			T24CustomerID:       "T24-CUS-001",
			SourceSystem:        "MOCK",
			RiskRating:          "LOW",
			Sector:              "TECHNOLOGY",
			TaxID:               "123456789",
			IsActive:            true,
			LastSyncDate:        now,
		},
		"CUS-67890": {
			CustomerID:          "CUS-67890",
			CustomerName:        "OCP Group",
			CustomerType:        "CORPORATE",
			ContactPerson:       "Youssef Sekkouri",
			ContactEmail:        "y.sekkouri@ocpgroup.ma",
			ContactPhone:        "+212 537 680 000",
			Address:             "Hay Riad",
			City:                "Rabat",
			Country:             "Morocco",
			RelationshipManager: "Rachid Ouali",
			AccountManager:      "Marie Hassan",
			T24CustomerID:       "T24-CUS-002",
			SourceSystem:        "MOCK",
			RiskRating:          "MEDIUM",
			Sector:              "MINING",
			TaxID:               "987654321",
			IsActive:            true,
			LastSyncDate:        now,
		},
		"CUS-11111": {
			CustomerID:          "CUS-11111",
			CustomerName:        "Attijariwafa Bank",
			CustomerType:        "CORPORATE",
			ContactPerson:       "Nabil Benabdellah",
			ContactEmail:        "n.benabdellah@attijariwafa.ma",
			ContactPhone:        "+212 522 477 474",
			Address:             "2, Boulevard Moulay Youssef",
			City:                "Casablanca",
			Country:             "Morocco",
			RelationshipManager: "Aicha Bennani",
			AccountManager:      "Omar Fassi",
			T24CustomerID:       "T24-CUS-003",
			SourceSystem:        "MOCK",
			RiskRating:          "LOW",
			Sector:              "BANKING",
			TaxID:               "555666777",
			IsActive:            true,
			LastSyncDate:        now,
		},
	}
	return &MockCoreBanking{customers: customers, log: log}
}

func (m *MockCoreBanking) GetCustomerByID(_ context.Context, customerID string) (*model.Customer, error) {
	customer, ok := m.customers[customerID]
	if !ok {
		m.log.Warn().Str("customer_id", customerID).Msg("mock: customer not found")
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}
	return &customer, nil
}

func (m *MockCoreBanking) SearchCustomersByName(_ context.Context, name string) ([]model.Customer, error) {
	needle := strings.ToLower(name)
	var results []model.Customer
	for _, customer := range m.customers {
		if strings.Contains(strings.ToLower(customer.CustomerName), needle) {
			results = append(results, customer)
		}
	}
	return results, nil
}

func (m *MockCoreBanking) IsCustomerValid(_ context.Context, customerID string) (bool, error) {
	customer, ok := m.customers[customerID]
	return ok && customer.IsActive, nil
}

func (m *MockCoreBanking) SystemName() string {
	return "MOCK"
}
