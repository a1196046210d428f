package progress

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// MarkTestDone records completion of the initial or exit test. Repeating a
// call is a no-op in effect; flags never go back to false.
func (s *Service) MarkTestDone(ctx context.Context, email, kind string) error {
	acc, err := s.account(ctx, email)
	if err != nil {
		return err
	}

	tk, ok := domain.ParseTestKind(kind)
	if !ok {
		return domain.ErrInvalidTestKind(kind)
	}

	acc.MarkTestDone(tk)
	_, err = s.accounts.Save(ctx, acc)
	return err
}
