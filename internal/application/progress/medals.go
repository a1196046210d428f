package progress

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

// UpdateMedals merges a partial update into the external record and writes
// the full four-tuple back. Unsupplied fields keep the external value, or
// false when no record exists. The returned view reflects the resolved
// values; the external system is not re-read.
func (s *Service) UpdateMedals(ctx context.Context, email string, upd domain.MedalUpdate) (domain.ProgressView, error) {
	acc, err := s.account(ctx, email)
	if err != nil {
		return domain.ProgressView{}, err
	}

	current, err := s.currentMedals(ctx, acc)
	if err != nil {
		return domain.ProgressView{}, err
	}

	resolved := upd.Merge(current)

	ok, err := s.remote.Upsert(ctx, acc.DNI, resolved)
	if err != nil {
		return domain.ProgressView{}, domain.ErrUpstreamWriteFailed(err)
	}
	if !ok {
		return domain.ProgressView{}, domain.ErrUpstreamWriteFailed(nil)
	}

	if s.pub != nil {
		evt := MedalsUpdatedEvent{
			AccountID: acc.ID,
			Email:     acc.Email,
			StudentID: acc.DNI,
			Medal1:    resolved.Medal1,
			Medal2:    resolved.Medal2,
			Medal3:    resolved.Medal3,
			Medal4:    resolved.Medal4,
		}
		if err := s.pub.PublishMedalsUpdated(ctx, evt); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Str("event", "medals_updated").Msg("event publish failed")
		}
	}

	return domain.NewProgressView(resolved, acc), nil
}
