package identity

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// VerifyIdentity reports whether the roster holds email with exactly this DNI.
func (s *Service) VerifyIdentity(ctx context.Context, email, dni string) (bool, error) {
	return s.roster.MatchesEmailAndDNI(ctx, domain.NormalizeEmail(email), dni)
}
