package memory

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

// SeedRoster loads entries into an in-memory roster for local development.
// Safe to call multiple times (duplicates ignored).
func SeedRoster(ctx context.Context, roster *Roster, entries []domain.RosterEntry) {
	for _, e := range entries {
		_ = roster.Insert(ctx, e)
	}
	logger.Logger.Info().Int("entries", len(entries)).Msg("in-memory roster seeded")
}
