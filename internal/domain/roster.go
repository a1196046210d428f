package domain

// RosterEntry is the institutional source of truth for who may hold an account.
// It is never written by this service.
type RosterEntry struct {
	InstitutionalEmail string
	DNI                string
	Name               string
	Admin              bool
	Demographics
}
