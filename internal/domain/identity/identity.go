// Package identity describes the resolved caller of an operation. Every
// service method takes an *Identity explicitly instead of reading ambient
// session state, so the domain layer can be exercised without a running
// auth stack.
package identity

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is an authenticated caller. A nil *Identity means the caller is
// anonymous.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// IsAnonymous reports whether the caller carries no identity at all.
func (i *Identity) IsAnonymous() bool {
	return i == nil || i.ID == ""
}

// IsPrivileged reports whether the caller may mutate polls it does not own.
// The role is decided by the auth layer at login; the domain never inspects
// emails or other identity metadata.
func (i *Identity) IsPrivileged() bool {
	return !i.IsAnonymous() && i.Role == RoleAdmin
}

// ValidRole reports whether r is a role the system knows.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
