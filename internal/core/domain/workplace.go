package domain

import "time"

// Workplace is an isolated contractor business owning projects, records and invoices.
type Workplace struct {
	WorkplaceID string `json:"workplaceID"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
}

// UserWorkplaceRole defines the possible roles a user can have within a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin    UserWorkplaceRole = "ADMIN"
	RoleMember   UserWorkplaceRole = "MEMBER"
	RoleReadOnly UserWorkplaceRole = "READONLY" // may view reports only
	RoleRemoved  UserWorkplaceRole = "REMOVED"
)

var roleRank = map[UserWorkplaceRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// Grants reports whether a user holding r may act where required is needed.
// Removed and unknown roles grant nothing.
func (r UserWorkplaceRole) Grants(required UserWorkplaceRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= need
}

// UserWorkplace represents the membership of a User in a Workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`
	WorkplaceID string            `json:"workplaceID"`
	Role        UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}
