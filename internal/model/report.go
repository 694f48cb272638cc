package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatistics aggregates the portfolio for the dashboard endpoint.
type ContractStatistics struct {
	TotalContracts   int64           `json:"total_contracts"`
	ActiveContracts  int64           `json:"active_contracts"`
	ExpiredContracts int64           `json:"expired_contracts"`
	ExpiringSoon     int64           `json:"expiring_soon"`
	TotalValue       decimal.Decimal `json:"total_value"`
	ActiveValue      decimal.Decimal `json:"active_value"`
}

type StatusCount struct {
	Status ContractStatus `json:"status"`
	Count  int64          `json:"count"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type MonthlyTrend struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// ExpirationReportRow is one contract in the expiration report, with the
// derived fields already evaluated against the report's generation time.
type ExpirationReportRow struct {
	ContractNumber      string         `json:"contract_number"`
	Title               string         `json:"title"`
	TypeName            string         `json:"type_name"`
	CustomerName        string         `json:"customer_name"`
	InternalDepartment  string         `json:"internal_department"`
	Status              ContractStatus `json:"status"`
	EndDate             time.Time      `json:"end_date"`
	DaysUntilExpiration int64          `json:"days_until_expiration"`
	NeedsReminder       bool           `json:"needs_reminder"`
	FormattedValue      string         `json:"formatted_value"`
}

type ExpirationReport struct {
	GeneratedAt   time.Time             `json:"generated_at"`
	ThresholdDays int                   `json:"threshold_days"`
	Rows          []ExpirationReportRow `json:"rows"`
}
