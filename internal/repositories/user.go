package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
// The database constraint is the authoritative uniqueness guard for
// usernames; callers translate this into their own error vocabulary.
var ErrUniqueViolation = errors.New("unique constraint violation")

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user holding the given username, or nil
// when no user holds it.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, external_id, email, username, first_name, last_name, avatar_url, bio, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByExternalID returns the user for the given identity-provider id,
// or nil when the principal has never been seen.
func (r *UserReadRepository) GetByExternalID(ctx context.Context, externalID string) (*models.UserDB, error) {
	const query = `
		SELECT id, external_id, email, username, first_name, last_name, avatar_url, bio, created_at, updated_at
		FROM users
		WHERE external_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, externalID)

	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{externalID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Upsert creates the user on first sight of the external identity and
// refreshes the mutable display fields on every later call. The
// username column is never touched here.
func (r *UserWriteRepository) Upsert(ctx context.Context, principal models.Principal) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (external_id, email, first_name, last_name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (external_id) DO UPDATE
		SET email = EXCLUDED.email,
		    first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = NOW()
		RETURNING id, external_id, email, username, first_name, last_name, avatar_url, bio, created_at, updated_at
	`
	args := []any{principal.ExternalID, principal.Email, principal.FirstName, principal.LastName, principal.AvatarURL}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SetUsername assigns the username to the principal's user. The unique
// index on users.username serializes concurrent claims of the same
// candidate; the loser gets ErrUniqueViolation. Returns nil when the
// principal has no user row.
func (r *UserWriteRepository) SetUsername(ctx context.Context, externalID, username string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $1, updated_at = NOW()
		WHERE external_id = $2
		RETURNING id, external_id, email, username, first_name, last_name, avatar_url, bio, created_at, updated_at
	`
	args := []any{username, externalID}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("username claim",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
