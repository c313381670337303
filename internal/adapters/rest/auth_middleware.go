package rest

import (
	"net/http"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

const MessageUnauthorized = "Unauthorized"

// AuthFilter attaches an Identity to requests that carry a valid, unrevoked
// bearer token. It never rejects: anonymous requests go on unchanged and
// RequireIdentity decides per route.
type AuthFilter struct {
	tokens  port.TokenProviderPort
	revoked port.RevokedTokenStorePort
}

func NewAuthFilter(tokens port.TokenProviderPort, revoked port.RevokedTokenStorePort) *AuthFilter {
	return &AuthFilter{tokens: tokens, revoked: revoked}
}

func (f *AuthFilter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "AuthFilter"})

		revoked, err := f.revoked.Exists(ctx, token)
		if err != nil {
			logger.Error("Revocation lookup failed, treating request as anonymous", err, nil)
			next.ServeHTTP(w, r)
			return
		}
		if revoked {
			logger.Debug("Revoked token presented", nil)
			next.ServeHTTP(w, r)
			return
		}
		if !f.tokens.Validate(ctx, token) {
			next.ServeHTTP(w, r)
			return
		}

		subject, err := f.tokens.SubjectOf(ctx, token)
		if err != nil {
			logger.Warn("Valid token without readable subject", port.Fields{"error": err.Error()})
			next.ServeHTTP(w, r)
			return
		}

		ctx = contextkeys.ContextWithIdentity(ctx, domain.Identity{Subject: subject})
		ctx = contextkeys.ContextWithLogger(ctx, contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"subject": subject}))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireIdentity rejects anonymous requests with a 401 envelope.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := contextkeys.IdentityFromContext(r.Context()); !ok {
			WriteJSONError(w, http.StatusUnauthorized, MessageUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
