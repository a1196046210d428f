package progress

import (
	"context"
	"errors"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

type Service struct {
	accounts AccountStore
	remote   ProgressClient
	pub      EventPublisher
}

func NewService(accounts AccountStore, remote ProgressClient, pub EventPublisher) *Service {
	return &Service{accounts: accounts, remote: remote, pub: pub}
}

func (s *Service) account(ctx context.Context, email string) (domain.Account, error) {
	return s.accounts.FindByEmail(ctx, domain.NormalizeEmail(email))
}

// currentMedals scans the external list for the account's record.
// Returns nil when there is none.
func (s *Service) currentMedals(ctx context.Context, acc domain.Account) (*domain.Medals, error) {
	records, err := s.remote.ReadAll(ctx)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.ErrUpstreamUnavailable(err)
	}
	rec, ok := domain.FindByStudentID(records, acc.DNI)
	if !ok {
		return nil, nil
	}
	m := rec.Medals
	return &m, nil
}
