package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
)

type memoryPropertyStore struct {
	properties []domain.Property
	err        error
}

var _ port.PropertyStorePort = (*memoryPropertyStore)(nil)

func (s *memoryPropertyStore) FindAll(ctx context.Context) ([]domain.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Property(nil), s.properties...), nil
}

func (s *memoryPropertyStore) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.properties {
		if s.properties[i].ID == id {
			p := s.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memoryPropertyStore) FindByFilter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
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

type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
	err    error
}

var _ port.UserRepositoryPort = (*memoryUserRepo)(nil)

func newMemoryUserRepo(users ...domain.User) *memoryUserRepo {
	r := &memoryUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		r.nextID++
		if u.ID == 0 {
			u.ID = r.nextID
		}
		r.users[u.Username] = u
	}
	return r
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = *user
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.users[user.Username] = *user
	return nil
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hash, password string) bool   { return hash == "hashed:"+password }

// fakeTokens issues "token-<subject>" and treats anything with that prefix as valid.
type fakeTokens struct {
	expiresAt time.Time
}

func (f *fakeTokens) Issue(ctx context.Context, subject string) (string, error) {
	return "token-" + subject, nil
}

func (f *fakeTokens) Validate(ctx context.Context, token string) bool {
	return strings.HasPrefix(token, "token-")
}

func (f *fakeTokens) SubjectOf(ctx context.Context, token string) (string, error) {
	if !f.Validate(ctx, token) {
		return "", domain.ErrTokenInvalid
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func (f *fakeTokens) ExpiresAt(ctx context.Context, token string) (time.Time, error) {
	return f.expiresAt, nil
}

type memoryRevokedStore struct {
	mu     sync.Mutex
	tokens map[string]domain.RevokedToken
}

func newMemoryRevokedStore() *memoryRevokedStore {
	return &memoryRevokedStore{tokens: map[string]domain.RevokedToken{}}
}

func (s *memoryRevokedStore) Exists(ctx context.Context, token string) (bool, error) {
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
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for k, v := range s.tokens {
		if v.ExpiresAt.Before(now) {
			delete(s.tokens, k)
			removed++
		}
	}
	return removed, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []port.AuthEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event port.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errStoreDown = errors.New("store down")
