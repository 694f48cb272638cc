// Package integration connects the contract repository to the bank's core
// systems (T24/Evolan). Only customer lookup is consumed by the contract
// core; the mock implementation serves development and test environments.
package integration

import (
	"context"
	"errors"

	"github.com/bpdigital/contract-repository/internal/model"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CoreBanking is the customer lookup contract.
type CoreBanking interface {
	GetCustomerByID(ctx context.Context, customerID string) (*model.Customer, error)
	SearchCustomersByName(ctx context.Context, name string) ([]model.Customer, error)
	IsCustomerValid(ctx context.Context, customerID string) (bool, error)
	SystemName() string
}
