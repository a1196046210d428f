package domain

type Role string

const (
	// RoleUser is every roster member without the admin flag.
	RoleUser Role = "USER"
	// RoleAdmin is carried as a claim only; nothing in this service checks it.
	RoleAdmin Role = "ADMIN"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

// RoleFromRosterFlag maps the roster admin flag to an account role.
func RoleFromRosterFlag(admin bool) Role {
	if admin {
		return RoleAdmin
	}
	return RoleUser
}
