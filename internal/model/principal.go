package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleContractManager Role = "CONTRACT_MANAGER"
	RoleCompliance      Role = "COMPLIANCE"
	RoleViewer          Role = "VIEWER"
)

// Principal is the authenticated caller extracted from the access token.
// Username feeds the audit columns on every write.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) CanManageContracts() bool {
	return p.Role == RoleAdmin || p.Role == RoleContractManager
}

func (p Principal) CanViewReports() bool {
	return p.Role != ""
}
