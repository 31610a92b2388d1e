package domain

// Role distinguishes the two account collections.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Account models an admin or client. PasswordHash is only populated when the
// account was fetched with sensitive fields included and is never serialised.
type Account struct {
	ID           string `json:"id"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// Client only.
	PhoneNo string `json:"phoneNo,omitempty"`
	Address string `json:"address,omitempty"`
}
