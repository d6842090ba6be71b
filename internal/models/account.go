package models

import "time"

// Roles accepted by the create and update endpoints. Role is a plain
// string tag, not an authorization mechanism.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleAccountant = "accountant"
	RoleEmployee   = "employee"
	RoleApplicant  = "applicant"
)

// SignupRole is stamped on self-registered accounts. Its casing is
// carried over from the legacy role set and does not match the
// validated values above, so signed-up accounts never show up in the
// employee listing.
const SignupRole = "Applicant"

var validRoles = map[string]bool{
	RoleUser:       true,
	RoleAdmin:      true,
	RoleHR:         true,
	RoleAccountant: true,
	RoleEmployee:   true,
	RoleApplicant:  true,
}

// ValidRole reports whether role is one of the accepted values.
// Matching is case-sensitive.
func ValidRole(role string) bool {
	return validRoles[role]
}

type Account struct {
	ID         int64      `db:"id" json:"id"`
	FirstName  string     `db:"firstname" json:"firstName"`
	LastName   string     `db:"lastname" json:"lastName"`
	Email      string     `db:"email" json:"email"`
	Password   string     `db:"password" json:"-"`
	Role       string     `db:"role" json:"role"`
	LastLogout *time.Time `db:"last_logout" json:"-"`
}

// Profile is the subset of an account returned by login.
type Profile struct {
	Email     string `db:"email" json:"email"`
	FirstName string `db:"firstname" json:"firstName"`
	LastName  string `db:"lastname" json:"lastName"`
	Role      string `db:"role" json:"role"`
}
