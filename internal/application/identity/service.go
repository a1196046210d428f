package identity

import (
	"context"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

// MinPasswordLength applies to password resets.
const MinPasswordLength = 8

type Service struct {
	roster   RosterLookup
	accounts AccountStore
	hasher   CredentialVerifier
	tokens   TokenIssuer
	pub      EventPublisher

	placeholderOnce sync.Once
	placeholder     string
}

func NewService(
	roster RosterLookup,
	accounts AccountStore,
	hasher CredentialVerifier,
	tokens TokenIssuer,
	pub EventPublisher,
) *Service {
	return &Service{
		roster:   roster,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		pub:      pub,
	}
}

// publish runs after a committed change; a broker failure must not undo it.
func (s *Service) publish(ctx context.Context, event string, fn func(EventPublisher) error) {
	if s.pub == nil {
		return
	}
	if err := fn(s.pub); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Str("event", event).Msg("event publish failed")
	}
}

func (s *Service) hash(raw string) (string, error) {
	h, err := s.hasher.Hash(raw)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return h, nil
}

// placeholderHash is compared against when no account exists, so unknown emails
// cost the same as wrong passwords. It is hashed once with the configured cost.
func (s *Service) placeholderHash() string {
	s.placeholderOnce.Do(func() {
		h, err := s.hasher.Hash("placeholder-password-never-matches")
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("placeholder hash failed")
			return
		}
		s.placeholder = h
	})
	return s.placeholder
}
