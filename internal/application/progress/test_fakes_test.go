package progress

import (
	"context"
	"errors"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

type fakeAccounts struct {
	mu sync.Mutex

	byEmail map[string]domain.Account

	findErr error
	saveErr error

	saves int
}

func newFakeAccounts(accs ...domain.Account) *fakeAccounts {
	f := &fakeAccounts{byEmail: map[string]domain.Account{}}
	for _, a := range accs {
		f.byEmail[a.Email] = a
	}
	return f
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

func (f *fakeAccounts) Save(ctx context.Context, a domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return domain.Account{}, f.saveErr
	}
	f.byEmail[a.Email] = a
	f.saves++
	return a, nil
}

type upsertCall struct {
	studentID string
	medals    domain.Medals
}

type fakeRemote struct {
	mu sync.Mutex

	records []domain.ProgressRecord

	readErr   error
	upsertErr error
	reject    bool

	reads   int
	upserts []upsertCall
}

func (f *fakeRemote) ReadAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]domain.ProgressRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, studentID string, m domain.Medals) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	if f.reject {
		return false, nil
	}
	f.upserts = append(f.upserts, upsertCall{studentID: studentID, medals: m})
	return true, nil
}

type fakePublisher struct {
	err    error
	events []MedalsUpdatedEvent
}

func (p *fakePublisher) PublishMedalsUpdated(ctx context.Context, evt MedalsUpdatedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

var errBoom = errors.New("boom")

func ana() domain.Account {
	return domain.Account{ID: 1, Email: "ana@uni.edu", DNI: "123", Enabled: true, Role: domain.RoleUser}
}

func newSvcForTest(records ...domain.ProgressRecord) (*Service, *fakeAccounts, *fakeRemote, *fakePublisher) {
	accs := newFakeAccounts(ana())
	remote := &fakeRemote{records: records}
	pub := &fakePublisher{}
	return NewService(accs, remote, pub), accs, remote, pub
}

func medals(a, b, c, d bool) domain.Medals {
	return domain.Medals{Medal1: a, Medal2: b, Medal3: c, Medal4: d}
}
