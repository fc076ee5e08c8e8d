package models

type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"
)

// Identity is the resolved session identity for a request. A nil *Identity
// means anonymous. Guards switch on Role, never on concrete entity types.
type Identity struct {
	Role Role
	ID   uint
}

func (i *Identity) IsBuyer() bool {
	return i != nil && i.Role == RoleBuyer
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
