package rest_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type discardLogger struct{}

var _ port.LoggerPort = discardLogger{}

func (discardLogger) Info(msg string, fields port.Fields)             {}
func (discardLogger) Warn(msg string, fields port.Fields)             {}
func (discardLogger) Error(msg string, err error, fields port.Fields) {}
func (discardLogger) Debug(msg string, fields port.Fields)            {}
func (d discardLogger) WithFields(fields port.Fields) port.LoggerPort { return d }

type memoryPropertyStore struct {
	properties []domain.Property
}

var _ port.PropertyStorePort = (*memoryPropertyStore)(nil)

func (s *memoryPropertyStore) FindAll(ctx context.Context) ([]domain.Property, error) {
	return append([]domain.Property(nil), s.properties...), nil
}

func (s *memoryPropertyStore) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	for i := range s.properties {
		if s.properties[i].ID == id {
			p := s.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memoryPropertyStore) FindByFilter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Property, error) {
	out := []domain.Property{}
	for _, p := range s.properties {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryPropertyStore) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Property, error) {
	filter, ok := domain.KeywordOnlyFilter(keyword)
	if !ok {
		return []domain.Property{}, nil
	}
	return s.FindByFilter(ctx, filter)
}

// fakeTokens accepts "token-<subject>" strings.
type fakeTokens struct{}

var _ port.TokenProviderPort = fakeTokens{}

func (fakeTokens) Issue(ctx context.Context, subject string) (string, error) {
	return "token-" + subject, nil
}

func (fakeTokens) Validate(ctx context.Context, token string) bool {
	return strings.HasPrefix(token, "token-") && len(token) > len("token-")
}

func (f fakeTokens) SubjectOf(ctx context.Context, token string) (string, error) {
	if !f.Validate(ctx, token) {
		return "", domain.ErrTokenInvalid
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func (fakeTokens) ExpiresAt(ctx context.Context, token string) (time.Time, error) {
	return time.Now().Add(time.Hour), nil
}

type memoryRevokedStore struct {
	mu     sync.Mutex
	tokens map[string]domain.RevokedToken
	err    error
}

var _ port.RevokedTokenStorePort = (*memoryRevokedStore)(nil)

func newMemoryRevokedStore() *memoryRevokedStore {
	return &memoryRevokedStore{tokens: map[string]domain.RevokedToken{}}
}

func (s *memoryRevokedStore) Exists(ctx context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *memoryRevokedStore) Revoke(ctx context.Context, token domain.RevokedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token.Token]; ok {
		return domain.ErrRevokedTokenExists
	}
	s.tokens[token.Token] = token
	return nil
}

func (s *memoryRevokedStore) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type nopPublisher struct{}

var _ port.AuthEventsPublisherPort = nopPublisher{}

func (nopPublisher) Publish(ctx context.Context, event port.AuthEvent) error { return nil }

type registerFunc func(ctx context.Context, user *domain.User, password string) (*domain.User, string, error)

func (f registerFunc) Execute(ctx context.Context, user *domain.User, password string) (*domain.User, string, error) {
	return f(ctx, user, password)
}

type loginFunc func(ctx context.Context, username, password string) (*domain.User, string, error)

func (f loginFunc) Execute(ctx context.Context, username, password string) (*domain.User, string, error) {
	return f(ctx, username, password)
}

type getProfileFunc func(ctx context.Context, username string) (*domain.User, error)

func (f getProfileFunc) Execute(ctx context.Context, username string) (*domain.User, error) {
	return f(ctx, username)
}

type updateProfileFunc func(ctx context.Context, username string, update domain.ProfileUpdate) (*domain.User, error)

func (f updateProfileFunc) Execute(ctx context.Context, username string, update domain.ProfileUpdate) (*domain.User, error) {
	return f(ctx, username, update)
}

var errDatabaseDown = errors.New("database down")
