package eventlog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	reqctx "github.com/baechuer/real-time-ressys/services/learner-service/internal/pkg/context"
)

// Logger writes the business events handlers emit after an account or progress
// operation. Records go to the service log; nothing is persisted.
// Emails are masked; passwords, DNIs and tokens are never logged.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) event(ctx context.Context, e *zerolog.Event, name string) *zerolog.Event {
	e = e.Str("event", name)
	if rid := reqctx.GetRequestID(ctx); rid != "" {
		e = e.Str("request_id", rid)
	}
	return e
}

// AccountSignedUp logs a successful signup
func (l *Logger) AccountSignedUp(ctx context.Context, email string) {
	l.event(ctx, l.log.Info(), "account_signed_up").
		Str("email", MaskEmail(email)).
		Msg("account created from roster")
}

// SignupRejected logs a refused signup with its domain code
func (l *Logger) SignupRejected(ctx context.Context, email, reason string) {
	l.event(ctx, l.log.Warn(), "signup_rejected").
		Str("email", MaskEmail(email)).
		Str("reason", reason).
		Msg("signup rejected")
}

func (l *Logger) PasswordReset(ctx context.Context, email string) {
	l.event(ctx, l.log.Info(), "password_reset").
		Str("email", MaskEmail(email)).
		Msg("password reset")
}

func (l *Logger) LoginSucceeded(ctx context.Context, email string) {
	l.event(ctx, l.log.Info(), "user_logged_in").
		Str("email", MaskEmail(email)).
		Msg("user logged in")
}

// LoginFailed logs a failed login attempt
func (l *Logger) LoginFailed(ctx context.Context, email, reason string) {
	l.event(ctx, l.log.Warn(), "login_failed").
		Str("email", MaskEmail(email)).
		Str("reason", reason).
		Msg("login attempt failed")
}

func (l *Logger) MedalsUpdated(ctx context.Context, email string, medals [4]bool) {
	l.event(ctx, l.log.Info(), "medals_updated").
		Str("email", MaskEmail(email)).
		Bool("medal1", medals[0]).
		Bool("medal2", medals[1]).
		Bool("medal3", medals[2]).
		Bool("medal4", medals[3]).
		Msg("medals updated")
}

func (l *Logger) TestMarkedDone(ctx context.Context, email, kind string) {
	l.event(ctx, l.log.Info(), "test_marked_done").
		Str("email", MaskEmail(email)).
		Str("kind", kind).
		Msg("test marked done")
}

// MaskEmail keeps the first two characters of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if len(email) < 5 || at < 0 {
		return "***"
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
