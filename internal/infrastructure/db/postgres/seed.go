package postgres

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
)

type RosterSeeder interface {
	Insert(ctx context.Context, e domain.RosterEntry) error
}

// DevRoster is loaded in dev so signup can be exercised without the
// institutional import.
var DevRoster = []domain.RosterEntry{
	{
		InstitutionalEmail: "admin@example.edu",
		DNI:                "10000001",
		Name:               "Dev Admin",
		Admin:              true,
	},
	{
		InstitutionalEmail: "student@example.edu",
		DNI:                "10000002",
		Name:               "Dev Student",
		Demographics: domain.Demographics{
			Gender:    "F",
			Age:       19,
			City:      "Medellin",
			Subregion: "Valle de Aburra",
			Program:   "Ingenieria de Sistemas",
			Level:     "1",
		},
	},
	{
		InstitutionalEmail: "student2@example.edu",
		DNI:                "10000003",
		Name:               "Dev Student Two",
		Demographics: domain.Demographics{
			Gender:  "M",
			Age:     21,
			Program: "Licenciatura en Matematicas",
			Level:   "3",
		},
	},
}

// SeedRoster inserts DevRoster. Safe to call on every start.
func SeedRoster(ctx context.Context, repo RosterSeeder) {
	n := 0
	for _, e := range DevRoster {
		if err := repo.Insert(ctx, e); err != nil {
			logger.Logger.Warn().Err(err).Str("email", e.InstitutionalEmail).Msg("roster seed failed")
			continue
		}
		n++
	}
	logger.Logger.Info().Int("entries", n).Msg("dev roster seeded")
}
