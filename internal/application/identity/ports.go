package identity

import (
	"context"
	"time"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

/*
RosterLookup
------------
Read-only access to the institutional roster.
FindByInstitutionalEmail returns domain.ErrNotInRoster when no entry exists.
*/
type RosterLookup interface {
	MatchesEmailAndDNI(ctx context.Context, email, dni string) (bool, error)
	FindByInstitutionalEmail(ctx context.Context, email string) (domain.RosterEntry, error)
}

/*
AccountStore
------------
Persistence port for accounts, keyed by normalized email.
FindByEmail returns domain.ErrAccountNotFound on a miss.
Save inserts when ID is zero and updates otherwise.
*/
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, a domain.Account) (domain.Account, error)
}

/*
CredentialVerifier
------------------
Abstracts bcrypt.
*/
type CredentialVerifier interface {
	Hash(raw string) (string, error)
	Matches(raw, hash string) bool
}

/*
TokenIssuer
-----------
Signs a claim set for subject into a bearer token.
*/
type TokenIssuer interface {
	Generate(subject string, claims map[string]any) (string, error)
}

/*
EventPublisher
--------------
Publishes account lifecycle events after the state change is committed.
*/
type EventPublisher interface {
	PublishAccountCreated(ctx context.Context, evt AccountCreatedEvent) error
	PublishPasswordReset(ctx context.Context, evt PasswordResetEvent) error
}

type AccountCreatedEvent struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Program   string `json:"program,omitempty"`
}

type PasswordResetEvent struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
}

// TokenClaims is what a verified access token carries.
type TokenClaims struct {
	Subject  string // account email
	UserID   int64
	Role     string
	AvatarID int
	Exp      time.Time
}
