package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the HS256 key size in bytes.
const MinSecretLength = 32

// TokenProvider implements TokenProviderPort with HS256-signed JWTs.
// The key and TTL never change after construction.
type TokenProvider struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	now        func() time.Time
}

func NewTokenProvider(signingKey string, ttl time.Duration, issuer string) (*TokenProvider, error) {
	if len(signingKey) < MinSecretLength {
		return nil, fmt.Errorf("JWT signing key must be at least %d bytes", MinSecretLength)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT expiration must be positive, got %s", ttl)
	}
	return &TokenProvider{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		issuer:     issuer,
		now:        time.Now,
	}, nil
}

// Issue signs a token for subject, valid from now for the configured TTL.
func (p *TokenProvider) Issue(ctx context.Context, subject string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	providerLogger := logger.WithFields(port.Fields{
		"component": "TokenProvider",
		"method":    "Issue",
		"subject":   subject,
	})

	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    p.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
	if err != nil {
		providerLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	providerLogger.Debug("Token issued.", port.Fields{"ttl": p.ttl.String()})
	return signed, nil
}

// Validate reports whether the token is well-formed, correctly signed and unexpired.
func (p *TokenProvider) Validate(ctx context.Context, token string) bool {
	_, err := p.parse(ctx, token)
	return err == nil
}

func (p *TokenProvider) SubjectOf(ctx context.Context, token string) (string, error) {
	claims, err := p.parse(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (p *TokenProvider) ExpiresAt(ctx context.Context, token string) (time.Time, error) {
	claims, err := p.parse(ctx, token)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, domain.ErrTokenInvalid
	}
	return claims.ExpiresAt.Time, nil
}

func (p *TokenProvider) parse(ctx context.Context, token string) (*jwt.RegisteredClaims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	providerLogger := logger.WithFields(port.Fields{
		"component": "TokenProvider",
		"method":    "parse",
	})

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			providerLogger.Debug("Token has expired", port.Fields{"subject": claims.Subject})
		} else {
			providerLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		providerLogger.Warn("Token was parsed but carries no subject", nil)
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
