package domain

import "strings"

// Medals are the four achievement flags held by the external progress system.
type Medals struct {
	Medal1 bool
	Medal2 bool
	Medal3 bool
	Medal4 bool
}

// ProgressRecord is one entry of the external progress list, keyed by student DNI.
type ProgressRecord struct {
	StudentID string
	Medals
}

// ProgressView is returned to callers and never persisted.
type ProgressView struct {
	Medals
	InitialTestDone bool
	ExitTestDone    bool
}

// MedalUpdate carries a partial update; unset fields keep their current value.
type MedalUpdate struct {
	Medal1 Optional[bool]
	Medal2 Optional[bool]
	Medal3 Optional[bool]
	Medal4 Optional[bool]
}

// Merge resolves every field against current. A nil current means no external record.
func (u MedalUpdate) Merge(current *Medals) Medals {
	var base Medals
	if current != nil {
		base = *current
	}
	return Medals{
		Medal1: u.Medal1.Or(base.Medal1),
		Medal2: u.Medal2.Or(base.Medal2),
		Medal3: u.Medal3.Or(base.Medal3),
		Medal4: u.Medal4.Or(base.Medal4),
	}
}

// FindByStudentID returns the first record whose trimmed student id equals the trimmed dni.
// An empty dni never matches.
func FindByStudentID(records []ProgressRecord, dni string) (ProgressRecord, bool) {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return ProgressRecord{}, false
	}
	for _, r := range records {
		if strings.TrimSpace(r.StudentID) == dni {
			return r, true
		}
	}
	return ProgressRecord{}, false
}

// NewProgressView combines externally held medals with the account's test flags.
func NewProgressView(m Medals, a Account) ProgressView {
	return ProgressView{
		Medals:          m,
		InitialTestDone: a.InitialTestDone,
		ExitTestDone:    a.ExitTestDone,
	}
}

type TestKind string

const (
	TestInitial TestKind = "test-inicial"
	TestExit    TestKind = "test-salida"
)

// ParseTestKind matches the two recognised completion tokens case-insensitively.
func ParseTestKind(kind string) (TestKind, bool) {
	switch {
	case strings.EqualFold(kind, string(TestInitial)):
		return TestInitial, true
	case strings.EqualFold(kind, string(TestExit)):
		return TestExit, true
	default:
		return "", false
	}
}

// MarkTestDone sets the flag for kind. Flags only ever move to true.
func (a *Account) MarkTestDone(kind TestKind) {
	switch kind {
	case TestInitial:
		a.InitialTestDone = true
	case TestExit:
		a.ExitTestDone = true
	}
}
