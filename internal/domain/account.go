package domain

import "strings"

// Demographics are copied from the roster when the account is created.
type Demographics struct {
	Gender            string
	Age               int
	BirthDate         string
	Phone             string
	Mobile            string
	PersonalEmail     string
	City              string
	Subregion         string
	DocumentTypeID    string
	DifferentialFocus string
	Program           string
	Level             string
}

type Account struct {
	ID              int64
	Email           string
	DNI             string
	Name            string
	Enabled         bool
	PasswordHash    string
	Role            Role
	AvatarID        int
	InitialTestDone bool
	ExitTestDone    bool
	Demographics
}

// NormalizeEmail is applied before every account or roster lookup and write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewAccountFromRoster builds the account signup persists for a matched roster entry.
func NewAccountFromRoster(r RosterEntry, passwordHash string) Account {
	return Account{
		Email:           NormalizeEmail(r.InstitutionalEmail),
		DNI:             r.DNI,
		Name:            r.Name,
		Enabled:         true,
		PasswordHash:    passwordHash,
		Role:            RoleFromRosterFlag(r.Admin),
		AvatarID:        0,
		InitialTestDone: false,
		ExitTestDone:    false,
		Demographics:    r.Demographics,
	}
}
