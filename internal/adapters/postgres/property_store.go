package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectPropertiesWithOwner = `
	SELECT p.id, p.address, p.price, p.description, p.owner_id,
	       u.id, u.username, u.name, u.email, u.phone_number, u.role, u.created_at, u.updated_at
	FROM properties p
	LEFT JOIN users u ON u.id = p.owner_id`

// PropertyStore implements PropertyStorePort for PostgreSQL.
type PropertyStore struct {
	pool *pgxpool.Pool
}

func NewPropertyStore(pool *pgxpool.Pool) (*PropertyStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStore{pool: pool}, nil
}

// unicodeFoldingQuery asks LOWER() itself, so the answer holds for libc and ICU providers alike.
const unicodeFoldingQuery = `SELECT LOWER('ÖÄÉ') = 'öäé'`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CheckKeywordFolding reports whether the database folds non-ASCII letters in
// LOWER(). Under a C or POSIX ctype it only folds ASCII, and keyword search
// then misses case variants such as "Ö" for "ö". The result is logged as a
// warning; search keeps working for ASCII.
func (s *PropertyStore) CheckKeywordFolding(ctx context.Context) (bool, error) {
	return checkKeywordFolding(ctx, s.pool)
}

func checkKeywordFolding(ctx context.Context, q rowQuerier) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyStore",
		"method":    "CheckKeywordFolding",
	})

	var folds bool
	if err := q.QueryRow(ctx, unicodeFoldingQuery).Scan(&folds); err != nil {
		logger.Error("Failed to check LOWER() case folding", err, nil)
		return false, fmt.Errorf("failed to check case folding: %w", err)
	}
	if !folds {
		logger.Warn("Database LOWER() folds ASCII only; use a UTF-8 locale or ICU collation for non-ASCII keyword search", nil)
	}
	return folds, nil
}

func (s *PropertyStore) FindAll(ctx context.Context) ([]domain.Property, error) {
	return s.FindByFilter(ctx, domain.CatalogFilter{})
}

// FindByFilter runs the filter in SQL. Rows come back ordered by id so the
// listing is stable between calls.
func (s *PropertyStore) FindByFilter(ctx context.Context, filter domain.CatalogFilter) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStore",
		"method":    "FindByFilter",
	})

	whereClause, args := applyCatalogFilter(filter)
	query := fmt.Sprintf("%s %s ORDER BY p.id ASC", selectPropertiesWithOwner, whereClause)

	repoLogger.Debug("Executing catalog query.", port.Fields{"args_count": len(args)})
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties, err := pgx.CollectRows(rows, scanProperty)
	if err != nil {
		repoLogger.Error("Failed to scan properties", err, nil)
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}
	if properties == nil {
		properties = []domain.Property{}
	}

	repoLogger.Debug("Catalog query finished.", port.Fields{"found": len(properties)})
	return properties, nil
}

// SearchByKeyword is the keyword-only variant: a blank keyword selects nothing.
func (s *PropertyStore) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Property, error) {
	filter, ok := domain.KeywordOnlyFilter(keyword)
	if !ok {
		return []domain.Property{}, nil
	}
	return s.FindByFilter(ctx, filter)
}

// FindByID returns (nil, nil) when the property does not exist.
func (s *PropertyStore) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStore",
		"method":      "FindByID",
		"property_id": id,
	})

	query := selectPropertiesWithOwner + " WHERE p.id = $1"

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to query property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query property by id: %w", err)
	}

	property, err := pgx.CollectExactlyOneRow(rows, scanProperty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to scan property", err, nil)
		return nil, fmt.Errorf("failed to scan property: %w", err)
	}

	return &property, nil
}

func scanProperty(row pgx.CollectableRow) (domain.Property, error) {
	var (
		p           domain.Property
		description *string
		ownerID     *int64
		username    *string
		name        *string
		email       *string
		phone       *string
		role        *string
		createdAt   *time.Time
		updatedAt   *time.Time
	)

	err := row.Scan(
		&p.ID, &p.Address, &p.Price, &description, &p.OwnerID,
		&ownerID, &username, &name, &email, &phone, &role, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}

	p.Description = deref(description)
	// the join yields NULLs when owner_id is NULL or points nowhere
	if ownerID != nil {
		p.Owner = &domain.User{
			ID:          *ownerID,
			Username:    deref(username),
			Name:        deref(name),
			Email:       deref(email),
			PhoneNumber: deref(phone),
			Role:        deref(role),
		}
		if createdAt != nil {
			p.Owner.CreatedAt = *createdAt
		}
		if updatedAt != nil {
			p.Owner.UpdatedAt = *updatedAt
		}
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
