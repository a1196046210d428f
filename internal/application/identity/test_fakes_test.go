package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeRoster struct {
	mu sync.Mutex

	entries []domain.RosterEntry

	matchErr error
	findErr  error

	// forces FindByInstitutionalEmail to miss even when the entry exists
	hideOnFind bool

	matchCalls int
}

func (f *fakeRoster) MatchesEmailAndDNI(ctx context.Context, email, dni string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.matchCalls++
	if f.matchErr != nil {
		return false, f.matchErr
	}
	for _, e := range f.entries {
		if e.InstitutionalEmail == email && e.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoster) FindByInstitutionalEmail(ctx context.Context, email string) (domain.RosterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return domain.RosterEntry{}, f.findErr
	}
	if !f.hideOnFind {
		for _, e := range f.entries {
			if e.InstitutionalEmail == email {
				return e, nil
			}
		}
	}
	return domain.RosterEntry{}, domain.ErrNotInRoster()
}

type fakeAccounts struct {
	mu sync.Mutex

	byEmail map[string]domain.Account
	nextID  int64

	findErr   error
	existsErr error
	saveErr   error

	saves []domain.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]domain.Account{}, nextID: 1}
}

func (f *fakeAccounts) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return domain.Account{}, f.findErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAccounts) Save(ctx context.Context, a domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return domain.Account{}, f.saveErr
	}
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	}
	f.byEmail[a.Email] = a
	f.saves = append(f.saves, a)
	return a, nil
}

func (f *fakeAccounts) put(a domain.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	}
	f.byEmail[a.Email] = a
}

type fakeHasher struct {
	hashErr error
	hashed  []string

	compared []string
}

func (h *fakeHasher) Hash(raw string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	h.hashed = append(h.hashed, raw)
	return "hash:" + raw, nil
}

func (h *fakeHasher) Matches(raw, hash string) bool {
	h.compared = append(h.compared, hash)
	return hash == "hash:"+raw
}

type fakeIssuer struct {
	signErr error

	subject string
	claims  map[string]any
}

func (s *fakeIssuer) Generate(subject string, claims map[string]any) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	s.subject = subject
	s.claims = claims
	return fmt.Sprintf("jwt(%s)", subject), nil
}

type fakePublisher struct {
	mu sync.Mutex

	err error

	created []AccountCreatedEvent
	resets  []PasswordResetEvent
}

func (p *fakePublisher) PublishAccountCreated(ctx context.Context, evt AccountCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.created = append(p.created, evt)
	return nil
}

func (p *fakePublisher) PublishPasswordReset(ctx context.Context, evt PasswordResetEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.resets = append(p.resets, evt)
	return nil
}

/*
Fixture
*/

type testDeps struct {
	roster   *fakeRoster
	accounts *fakeAccounts
	hasher   *fakeHasher
	issuer   *fakeIssuer
	pub      *fakePublisher
}

func newSvcForTest() (*Service, *testDeps) {
	d := &testDeps{
		roster: &fakeRoster{entries: []domain.RosterEntry{
			{
				InstitutionalEmail: "ana@uni.edu",
				DNI:                "123",
				Name:               "Ana",
				Demographics:       domain.Demographics{Program: "Sistemas", Age: 20},
			},
			{
				InstitutionalEmail: "root@uni.edu",
				DNI:                "999",
				Name:               "Root",
				Admin:              true,
			},
		}},
		accounts: newFakeAccounts(),
		hasher:   &fakeHasher{},
		issuer:   &fakeIssuer{},
		pub:      &fakePublisher{},
	}
	svc := NewService(d.roster, d.accounts, d.hasher, d.issuer, d.pub)
	return svc, d
}

var errBoom = errors.New("boom")
