package identity

import (
	"context"
	"fmt"
	"unicode/utf16"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// passwordLength counts UTF-16 code units, so characters outside the BMP count twice.
func passwordLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ResetPassword replaces the password of an enabled account after re-verifying
// the email/DNI pair. The strength check runs first so weak passwords never
// reach the roster.
func (s *Service) ResetPassword(ctx context.Context, email, dni, newRawPassword string) error {
	if passwordLength(newRawPassword) < MinPasswordLength {
		return domain.ErrWeakPassword(fmt.Sprintf("min length %d", MinPasswordLength))
	}

	norm := domain.NormalizeEmail(email)

	ok, err := s.VerifyIdentity(ctx, norm, dni)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrIdentityMismatch()
	}

	acc, err := s.accounts.FindByEmail(ctx, norm)
	if err != nil {
		return err
	}
	if !acc.Enabled {
		return domain.ErrAccountDisabled()
	}

	hash, err := s.hash(newRawPassword)
	if err != nil {
		return err
	}
	acc.PasswordHash = hash

	if _, err := s.accounts.Save(ctx, acc); err != nil {
		return err
	}

	s.publish(ctx, "password_reset", func(p EventPublisher) error {
		return p.PublishPasswordReset(ctx, PasswordResetEvent{AccountID: acc.ID, Email: acc.Email})
	})
	return nil
}
