package identity

import (
	"context"
	"testing"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

func seedAna(d *testDeps, enabled bool) {
	d.accounts.put(domain.Account{
		Email:        "ana@uni.edu",
		DNI:          "123",
		Enabled:      enabled,
		PasswordHash: "hash:old-password",
		Role:         domain.RoleUser,
	})
}

func TestResetPassword_OK_ReplacesHashOnly(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)

	if err := svc.ResetPassword(context.Background(), "ANA@uni.edu", "123", "new-password"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, _ := d.accounts.FindByEmail(context.Background(), "ana@uni.edu")
	if a.PasswordHash != "hash:new-password" {
		t.Fatalf("expected new hash, got %q", a.PasswordHash)
	}
	if a.ID != 1 || a.Role != domain.RoleUser || !a.Enabled {
		t.Fatalf("other fields changed: %+v", a)
	}
	if len(d.pub.resets) != 1 {
		t.Fatalf("expected password_reset event")
	}
}

func TestResetPassword_TooShort_RejectedBeforeRoster(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)

	err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "short")
	requireErrCode(t, err, "weak_password")

	if d.roster.matchCalls != 0 {
		t.Fatalf("expected roster untouched, got %d calls", d.roster.matchCalls)
	}
}

func TestResetPassword_ExactlyMinLength_OK(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)

	if err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "12345678"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestResetPassword_LengthCountsUTF16Units(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pw   string
		weak bool
	}{
		{"four astral chars are eight units", "😀😀😀😀", false},
		{"three astral chars are six units", "😀😀😀", true},
		{"eight accented chars", "ñáéíóúüç", false},
		{"seven ascii", "1234567", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newSvcForTest()
			seedAna(d, true)

			err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", tc.pw)
			if tc.weak {
				requireErrCode(t, err, "weak_password")
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestResetPassword_IdentityMismatch(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)

	err := svc.ResetPassword(context.Background(), "ana@uni.edu", "000", "new-password")
	requireErrCode(t, err, "identity_mismatch")
}

func TestResetPassword_NoAccount_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newSvcForTest()

	err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "new-password")
	requireErrCode(t, err, domain.CodeAccountNotFound)
}

func TestResetPassword_Disabled_NoWrite(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, false)

	err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "new-password")
	requireErrCode(t, err, "account_disabled")

	if len(d.accounts.saves) != 0 {
		t.Fatalf("expected no save for disabled account")
	}
}

func TestResetPassword_HashFailure(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)
	d.hasher.hashErr = errBoom

	err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "new-password")
	requireErrCode(t, err, "hash_failed")
}

func TestResetPassword_ThenLoginWithNewPassword(t *testing.T) {
	t.Parallel()
	svc, d := newSvcForTest()
	seedAna(d, true)

	if err := svc.ResetPassword(context.Background(), "ana@uni.edu", "123", "new-password"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := svc.Login(context.Background(), "ana@uni.edu", "old-password"); err == nil {
		t.Fatalf("expected old password rejected")
	}
	if _, err := svc.Login(context.Background(), "ana@uni.edu", "new-password"); err != nil {
		t.Fatalf("expected new password accepted, got %v", err)
	}
}
