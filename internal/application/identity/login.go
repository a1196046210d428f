package identity

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// Login authenticates an account and issues a bearer token.
// IMPORTANT: unknown email, disabled account and wrong password all return the
// same error so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	acc, err := s.accounts.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if domain.Is(err, domain.CodeAccountNotFound) {
			// burn the same hashing cost as a real comparison
			s.hasher.Matches(password, s.placeholderHash())
			return "", domain.ErrInvalidCredentials()
		}
		return "", err
	}

	matched := s.hasher.Matches(password, acc.PasswordHash)
	if !matched || !acc.Enabled {
		return "", domain.ErrInvalidCredentials()
	}

	claims := map[string]any{
		"uid":      acc.ID,
		"role":     string(acc.Role),
		"avatarId": acc.AvatarID,
	}
	token, err := s.tokens.Generate(acc.Email, claims)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return token, nil
}
