package progress

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// GetMyProgress reads medals from the external system on every call and
// combines them with the account's own test flags.
func (s *Service) GetMyProgress(ctx context.Context, email string) (domain.ProgressView, error) {
	acc, err := s.account(ctx, email)
	if err != nil {
		return domain.ProgressView{}, err
	}

	current, err := s.currentMedals(ctx, acc)
	if err != nil {
		return domain.ProgressView{}, err
	}

	var m domain.Medals
	if current != nil {
		m = *current
	}
	return domain.NewProgressView(m, acc), nil
}
