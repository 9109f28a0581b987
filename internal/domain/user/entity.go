package user

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// BranchAll is the branch filter value that matches every branch.
const BranchAll = "ALL"

// User is a member profile. LeaveItems reference users by ID only; display
// fields are looked up through this entity.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Branch       string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsStaff reports whether the role may access staff views.
func (u User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}
