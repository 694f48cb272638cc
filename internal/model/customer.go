package model

import "time"

// Customer is a core banking customer record as returned by the T24/Evolan
// integration. It is never persisted here; contracts denormalize the subset
// they need.
type Customer struct {
	CustomerID          string
	CustomerName        string
	CustomerType        string // CORPORATE, RETAIL
	ContactPerson       string
	ContactEmail        string
	ContactPhone        string
	Address             string
	City                string
	Country             string
	RelationshipManager string
	AccountManager      string
	T24CustomerID       string
	SourceSystem        string
	RiskRating          string
	Sector              string
	TaxID               string
	IsActive            bool
	LastSyncDate        time.Time
}
