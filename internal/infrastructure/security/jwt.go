package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// JWTIssuer signs and verifies HS256 access tokens. The subject is the
// account email; uid, role and avatarId travel as private claims.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret, issuer string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type accessClaims struct {
	UserID   int64  `json:"uid"`
	Role     string `json:"role"`
	AvatarID int    `json:"avatarId"`
	jwt.RegisteredClaims
}

// Generate signs claims for subject. Registered claims (sub, iss, iat, exp)
// are always set here and override any caller-supplied keys of the same name.
func (s *JWTIssuer) Generate(subject string, claims map[string]any) (string, error) {
	now := s.now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["sub"] = subject
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()
	if s.issuer != "" {
		mc["iss"] = s.issuer
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

func (s *JWTIssuer) Verify(token string) (identity.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.TokenClaims{}, domain.ErrTokenExpired()
		}
		return identity.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return identity.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return identity.TokenClaims{
		Subject:  claims.Subject,
		UserID:   claims.UserID,
		Role:     claims.Role,
		AvatarID: claims.AvatarID,
		Exp:      exp,
	}, nil
}
