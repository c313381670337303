package postgres

import (
	"context"
	"errors"
	"fmt"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const selectUser = `SELECT id, username, name, email, phone_number, role, password_hash, created_at, updated_at FROM users`

// UserRepository implements UserRepositoryPort for PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

// Create inserts the user and writes the generated id back into it.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"username":  user.Username,
	})

	query := `INSERT INTO users (username, name, email, phone_number, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	repoLogger.Debug("Executing query to create user.", nil)
	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Name, user.Email, user.PhoneNumber, user.Role, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			repoLogger.Warn("User already exists", nil)
			return domain.NewConflict("Username atau email sudah digunakan")
		}
		repoLogger.Error("Failed to create user", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", port.Fields{"user_id": user.ID})
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Update",
		"user_id":   user.ID,
	})

	query := `UPDATE users SET name = $2, email = $3, phone_number = $4, password_hash = $5, updated_at = $6 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Email, user.PhoneNumber, user.PasswordHash, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			repoLogger.Warn("Email already in use", nil)
			return domain.NewConflict("Email sudah digunakan")
		}
		repoLogger.Error("Failed to update user", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewResourceNotFound("User tidak ditemukan")
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "FindByUsername", selectUser+" WHERE username = $1", username)
}

// FindByEmail compares case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "FindByEmail", selectUser+" WHERE LOWER(email) = LOWER($1)", email)
}

// findOne returns (nil, nil) when nothing matches.
func (r *UserRepository) findOne(ctx context.Context, method, query string, arg interface{}) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    method,
	})

	var user domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.PhoneNumber,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("User not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
