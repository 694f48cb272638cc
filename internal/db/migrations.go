package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_status') THEN
			CREATE TYPE contract_status AS ENUM (
				'DRAFT', 'PENDING_APPROVAL', 'ACTIVE', 'SUSPENDED',
				'EXPIRED', 'TERMINATED', 'RENEWED'
			);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_category') THEN
			CREATE TYPE contract_category AS ENUM (
				'IT_SERVICES', 'VENDOR_SERVICES', 'PROFESSIONAL_SERVICES',
				'FACILITY_MANAGEMENT', 'BANKING_SERVICES', 'LEGAL_SERVICES',
				'HUMAN_RESOURCES', 'MARKETING_SERVICES', 'INSURANCE',
				'REAL_ESTATE', 'OTHER'
			);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'risk_category') THEN
			CREATE TYPE risk_category AS ENUM (
				'LOW_RISK', 'MEDIUM_RISK', 'HIGH_RISK', 'CRITICAL_RISK'
			);
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contract_types (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		type_code VARCHAR(20) NOT NULL,
		type_name VARCHAR(100) NOT NULL,
		description VARCHAR(500) NOT NULL DEFAULT '',
		category contract_category NOT NULL,
		default_duration_months INT NOT NULL DEFAULT 12,
		default_reminder_days INT NOT NULL DEFAULT 30,
		requires_approval BOOLEAN NOT NULL DEFAULT FALSE,
		auto_renewal_allowed BOOLEAN NOT NULL DEFAULT FALSE,
		financial_impact BOOLEAN NOT NULL DEFAULT FALSE,
		risk_category risk_category NOT NULL DEFAULT 'MEDIUM_RISK',
		approval_workflow VARCHAR(200) NOT NULL DEFAULT '',
		required_documents VARCHAR(500) NOT NULL DEFAULT '',
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_by VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_by VARCHAR(100) NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		version BIGINT NOT NULL DEFAULT 0
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contract_types_type_code ON contract_types (type_code);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_number VARCHAR(50) NOT NULL,
		title VARCHAR(200) NOT NULL,
		description VARCHAR(1000) NOT NULL DEFAULT '',
		contract_type_id UUID NOT NULL REFERENCES contract_types(id),
		status contract_status NOT NULL DEFAULT 'DRAFT',
		customer_id VARCHAR(50) NOT NULL,
		customer_name VARCHAR(200) NOT NULL,
		customer_type VARCHAR(50) NOT NULL DEFAULT '',
		t24_customer_id VARCHAR(50) NOT NULL DEFAULT '',
		internal_department VARCHAR(100) NOT NULL,
		external_party VARCHAR(200) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		renewal_date DATE,
		contract_value NUMERIC(17,2),
		currency CHAR(3) NOT NULL DEFAULT 'MAD',
		payment_terms VARCHAR(100) NOT NULL DEFAULT '',
		risk_level VARCHAR(20),
		business_owner VARCHAR(100) NOT NULL DEFAULT '',
		primary_contact VARCHAR(100) NOT NULL DEFAULT '',
		relationship_manager VARCHAR(100) NOT NULL DEFAULT '',
		auto_renewal BOOLEAN NOT NULL DEFAULT FALSE,
		reminder_days INT NOT NULL DEFAULT 30,
		internal_notes VARCHAR(1000) NOT NULL DEFAULT '',
		compliance_notes VARCHAR(1000) NOT NULL DEFAULT '',
		source_system VARCHAR(50) NOT NULL DEFAULT 'MANUAL',
		last_customer_sync TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_by VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		modified_by VARCHAR(100) NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		version BIGINT NOT NULL DEFAULT 0
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_contract_number ON contracts (contract_number);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer_id ON contracts (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_contract_type_id ON contracts (contract_type_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_end_date ON contracts (end_date);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_internal_department ON contracts (internal_department);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
