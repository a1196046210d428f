package identity

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// Signup creates an account for a roster member. Checks run in order and the
// first failure wins; nothing is persisted unless all of them pass.
func (s *Service) Signup(ctx context.Context, email, dni, rawPassword string) error {
	norm := domain.NormalizeEmail(email)

	ok, err := s.VerifyIdentity(ctx, norm, dni)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrIdentityMismatch()
	}

	exists, err := s.accounts.ExistsByEmail(ctx, norm)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAccountAlreadyExists()
	}

	// Looked up again by email only; the roster may expose the full entry solely this way.
	entry, err := s.roster.FindByInstitutionalEmail(ctx, norm)
	if err != nil {
		if domain.Is(err, domain.CodeNotInRoster) {
			return domain.ErrNotInRoster()
		}
		return err
	}

	hash, err := s.hash(rawPassword)
	if err != nil {
		return err
	}

	created, err := s.accounts.Save(ctx, domain.NewAccountFromRoster(entry, hash))
	if err != nil {
		return err
	}

	s.publish(ctx, "account_created", func(p EventPublisher) error {
		return p.PublishAccountCreated(ctx, AccountCreatedEvent{
			AccountID: created.ID,
			Email:     created.Email,
			Role:      string(created.Role),
			Program:   created.Program,
		})
	})
	return nil
}
