package auth

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredential is the single failure mode of Verify. Signature,
// expiry, audience, issuer and claim-presence problems all collapse into it;
// the wrapped message carries the human-readable reason.
var ErrInvalidCredential = errors.New("invalid credential")

// Compiled-in development defaults, used when no external configuration is
// supplied. The secret is public by definition, never deploy with it.
const (
	devSecret       = "dev-insecure-secret"
	defaultTTL      = 30 * 24 * time.Hour
	defaultAudience = "account-gateway"
	defaultIssuer   = "account-system"
)

// requiredClaims must all be present for a token to verify.
var requiredClaims = []string{"jti", "sub", "aud", "iss", "iat", "exp"}

// TokenConfig holds the symmetric signing material and token parameters.
type TokenConfig struct {
	Secret   string
	TTL      time.Duration
	Audience string
	Issuer   string
}

// DefaultTokenConfig returns the insecure development-only configuration.
func DefaultTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   devSecret,
		TTL:      defaultTTL,
		Audience: defaultAudience,
		Issuer:   defaultIssuer,
	}
}

// TokenManager issues and verifies HS256-signed bearer tokens binding a
// Principal. It is immutable after construction and safe for concurrent use.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	audience string
	issuer   string
}

// NewTokenManager builds a TokenManager, filling any zero field from the
// development defaults.
func NewTokenManager(cfg TokenConfig) *TokenManager {
	def := DefaultTokenConfig()
	if cfg.Secret == "" {
		cfg.Secret = def.Secret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.Audience == "" {
		cfg.Audience = def.Audience
	}
	if cfg.Issuer == "" {
		cfg.Issuer = def.Issuer
	}
	return &TokenManager{
		secret:   []byte(cfg.Secret),
		ttl:      cfg.TTL,
		audience: cfg.Audience,
		issuer:   cfg.Issuer,
	}
}

// Issue signs a token for the given principal. The subject claim packs the
// principal as "id:username:identity", so usernames may not contain a colon.
// Each token gets a fresh random jti for audit and replay tracing.
func (m *TokenManager) Issue(p Principal) (string, error) {
	if strings.Contains(p.Username, ":") {
		return "", fmt.Errorf("issue token: username %q contains a colon", p.Username)
	}

	iat := time.Now().Unix()
	exp := iat + int64(m.ttl/time.Second)
	if exp < iat {
		// saturate instead of wrapping past the numeric ceiling
		exp = math.MaxInt64
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": uuid.NewString(),
		"sub": fmt.Sprintf("%d:%s:%s", p.ID, p.Username, p.Identity),
		"aud": m.audience,
		"iss": m.issuer,
		"iat": iat,
		"exp": exp,
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify decodes the token and validates signature, audience, issuer,
// expiry and required-claim presence in one pass, then unpacks the subject
// into a Principal. Every failure wraps ErrInvalidCredential.
func (m *TokenManager) Verify(tokenString string) (Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(m.audience),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	for _, name := range requiredClaims {
		if _, ok := claims[name]; !ok {
			return Principal{}, fmt.Errorf("%w: missing %q claim", ErrInvalidCredential, name)
		}
	}

	sub, _ := claims["sub"].(string)
	return principalFromSubject(sub)
}

// principalFromSubject unpacks "id:username:identity". The identity segment
// goes through ParseIdentity and therefore shares its Guest fallback.
func principalFromSubject(sub string) (Principal, error) {
	parts := strings.SplitN(sub, ":", 3)
	if len(parts) != 3 {
		return Principal{}, fmt.Errorf("%w: malformed subject %q", ErrInvalidCredential, sub)
	}
	id, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: subject id: %v", ErrInvalidCredential, err)
	}
	return Principal{
		ID:       int32(id),
		Username: parts[1],
		Identity: ParseIdentity(parts[2]),
	}, nil
}
