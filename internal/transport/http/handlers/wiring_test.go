package http_handlers

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/progress"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/eventlog"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/infrastructure/memory"
)

// -------------------------
// Test wiring (pure unit)
// -------------------------

type plainHasher struct{}

func (plainHasher) Hash(raw string) (string, error) { return "h:" + raw, nil }
func (plainHasher) Matches(raw, hash string) bool   { return hash == "h:"+raw }

type plainIssuer struct{}

func (plainIssuer) Generate(subject string, _ map[string]any) (string, error) {
	return "tok:" + subject, nil
}

type testApp struct {
	accounts *memory.AccountRepo
	remote   *memory.ProgressStore
	identity *IdentityHandler
	progress *ProgressHandler
}

func newTestApp(t *testing.T, records ...domain.ProgressRecord) *testApp {
	t.Helper()

	roster := memory.NewRoster(
		domain.RosterEntry{InstitutionalEmail: "ana@uni.edu", DNI: "123", Name: "Ana"},
		domain.RosterEntry{InstitutionalEmail: "bob@uni.edu", DNI: "456", Name: "Bob"},
	)
	accounts := memory.NewAccountRepo()
	remote := memory.NewProgressStore(records...)
	pub := memory.NewNoopPublisher()

	ids := identity.NewService(roster, accounts, plainHasher{}, plainIssuer{}, pub)
	prog := progress.NewService(accounts, remote, pub)

	events := eventlog.New(zerolog.Nop())

	return &testApp{
		accounts: accounts,
		remote:   remote,
		identity: NewIdentityHandler(ids, events),
		progress: NewProgressHandler(prog, events),
	}
}

// signedUp registers ana@uni.edu directly through the store.
func (a *testApp) signedUp(t *testing.T) domain.Account {
	t.Helper()

	acc, err := a.accounts.Save(context.Background(), domain.Account{
		Email:        "ana@uni.edu",
		DNI:          "123",
		Name:         "Ana",
		Enabled:      true,
		PasswordHash: "h:pw123456",
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return acc
}
