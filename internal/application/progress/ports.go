package progress

import (
	"context"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// AccountStore is the subset of account persistence the progress flows need.
// FindByEmail returns domain.ErrAccountNotFound on a miss.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	Save(ctx context.Context, a domain.Account) (domain.Account, error)
}

/*
ProgressClient
--------------
The external system that owns medal state. There is no single-record query;
callers scan ReadAll. Upsert returns false when the remote side rejects the write.
*/
type ProgressClient interface {
	ReadAll(ctx context.Context) ([]domain.ProgressRecord, error)
	Upsert(ctx context.Context, studentID string, m domain.Medals) (bool, error)
}

type EventPublisher interface {
	PublishMedalsUpdated(ctx context.Context, evt MedalsUpdatedEvent) error
}

type MedalsUpdatedEvent struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
	Medal1    bool   `json:"medal1"`
	Medal2    bool   `json:"medal2"`
	Medal3    bool   `json:"medal3"`
	Medal4    bool   `json:"medal4"`
}
