package memory

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/progress"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

// NoopPublisher logs events instead of sending them. Used when RabbitMQ is not configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishAccountCreated(ctx context.Context, evt identity.AccountCreatedEvent) error {
	logger.WithCtx(ctx).Debug().Int64("account_id", evt.AccountID).Str("email", evt.Email).Msg("noop-pub: account created")
	return nil
}

func (p *NoopPublisher) PublishPasswordReset(ctx context.Context, evt identity.PasswordResetEvent) error {
	logger.WithCtx(ctx).Debug().Int64("account_id", evt.AccountID).Str("email", evt.Email).Msg("noop-pub: password reset")
	return nil
}

func (p *NoopPublisher) PublishMedalsUpdated(ctx context.Context, evt progress.MedalsUpdatedEvent) error {
	logger.WithCtx(ctx).Debug().Int64("account_id", evt.AccountID).Str("student_id", evt.StudentID).Msg("noop-pub: medals updated")
	return nil
}
