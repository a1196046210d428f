package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

func testClaims() map[string]any {
	return map[string]any{"uid": int64(7), "role": "USER", "avatarId": 3}
}

func TestJWTIssuer_GenerateAndVerify(t *testing.T) {
	t.Parallel()

	s := NewJWTIssuer("secret", "learner-service", 2*time.Minute)
	tok, err := s.Generate("ana@uni.edu", testClaims())
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	c, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if c.Subject != "ana@uni.edu" || c.UserID != 7 || c.Role != "USER" || c.AvatarID != 3 {
		t.Fatalf("unexpected claims: %+v", c)
	}
	if c.Exp.IsZero() {
		t.Fatalf("expected exp to be set")
	}
}

func TestJWTIssuer_RegisteredClaimsNotOverridable(t *testing.T) {
	t.Parallel()

	s := NewJWTIssuer("secret", "learner-service", time.Minute)
	claims := testClaims()
	claims["sub"] = "mallory@uni.edu"
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()

	tok, err := s.Generate("ana@uni.edu", claims)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	c, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if c.Subject != "ana@uni.edu" {
		t.Fatalf("subject overridden: %q", c.Subject)
	}
	if c.Exp.After(time.Now().Add(2 * time.Minute)) {
		t.Fatalf("exp overridden: %v", c.Exp)
	}
}

func TestJWTIssuer_Verify_Expired(t *testing.T) {
	t.Parallel()

	s := NewJWTIssuer("secret", "learner-service", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := s.Generate("ana@uni.edu", testClaims())
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	v := NewJWTIssuer("secret", "learner-service", time.Minute)
	_, err = v.Verify(tok)
	if !domain.Is(err, "token_expired") {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTIssuer("secret1", "learner-service", time.Minute).Generate("a@b.edu", testClaims())
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	_, err = NewJWTIssuer("secret2", "learner-service", time.Minute).Verify(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTIssuer_Verify_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTIssuer("secret", "someone-else", time.Minute).Generate("a@b.edu", testClaims())
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	_, err = NewJWTIssuer("secret", "learner-service", time.Minute).Verify(tok)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTIssuer_Verify_AlgConfusion_Rejected(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"uid":  7,
		"role": "ADMIN",
		"iss":  "learner-service",
		"sub":  "a@b.edu",
		"exp":  time.Now().Add(time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected signing err: %v", err)
	}

	_, err = NewJWTIssuer("secret", "learner-service", time.Minute).Verify(unsigned)
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTIssuer_Verify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewJWTIssuer("secret", "", time.Minute).Verify("not.a.jwt")
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestNewJWTIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	if s := NewJWTIssuer("secret", "", 0); s.ttl != time.Hour {
		t.Fatalf("expected default ttl 1h, got %v", s.ttl)
	}
}
