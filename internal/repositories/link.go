package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetByID returns the link with the given id, or nil when it does not exist.
func (r *LinkReadRepository) GetByID(ctx context.Context, linkID uuid.UUID) (*models.LinkDB, error) {
	const query = `
		SELECT id, user_id, title, url, description, click_count, created_at, updated_at
		FROM links
		WHERE id = $1
	`

	var link models.LinkDB
	err := r.db.GetContext(ctx, &link, query, linkID)

	logger.Log.Infow("link read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{linkID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// ListByUserID returns the user's links in creation order.
func (r *LinkReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error) {
	const query = `
		SELECT id, user_id, title, url, description, click_count, created_at, updated_at
		FROM links
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	links := []models.LinkDB{}
	err := r.db.SelectContext(ctx, &links, query, userID)

	logger.Log.Infow("link list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(links),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return links, nil
}

// ListSocialByUserID returns the user's social links in creation order.
func (r *LinkReadRepository) ListSocialByUserID(ctx context.Context, userID uuid.UUID) ([]models.SocialLinkDB, error) {
	const query = `
		SELECT id, user_id, platform, url, created_at, updated_at
		FROM social_links
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	socialLinks := []models.SocialLinkDB{}
	err := r.db.SelectContext(ctx, &socialLinks, query, userID)

	logger.Log.Infow("social link list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(socialLinks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return socialLinks, nil
}

// TopByUserID returns up to n links ordered by click count descending.
// Ties are broken by creation order, earliest first.
func (r *LinkReadRepository) TopByUserID(ctx context.Context, userID uuid.UUID, n int) ([]models.TopLink, error) {
	const query = `
		SELECT id, title, url, click_count
		FROM links
		WHERE user_id = $1
		ORDER BY click_count DESC, created_at ASC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, userID, n)

	logger.Log.Infow("top links",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, n},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []models.TopLink{}
	for rows.Next() {
		var link models.TopLink
		if err := rows.Scan(&link.ID, &link.Title, &link.URL, &link.ClickCount); err != nil {
			return nil, err
		}
		top = append(top, link)
	}

	return top, rows.Err()
}

// MostClickedByUserID returns the user's single most clicked link, or
// nil when the user has no links. Ties are broken by the most recently
// created link so the result is deterministic.
func (r *LinkReadRepository) MostClickedByUserID(ctx context.Context, userID uuid.UUID) (*models.MostClickedLink, error) {
	const query = `
		SELECT id, title, click_count
		FROM links
		WHERE user_id = $1
		ORDER BY click_count DESC, created_at DESC
		LIMIT 1
	`

	var link models.MostClickedLink
	err := r.db.QueryRowxContext(ctx, query, userID).Scan(&link.ID, &link.Title, &link.ClickCount)

	logger.Log.Infow("most clicked link",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// CountByUserID returns how many links the user has.
func (r *LinkReadRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM links WHERE user_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("link count",
		"query", query,
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// SumClicksByUserID returns the total click count across the user's
// links. The denormalized counters are the source of truth for totals.
func (r *LinkReadRepository) SumClicksByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COALESCE(SUM(click_count), 0) FROM links WHERE user_id = $1`

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)

	logger.Log.Infow("link click sum",
		"query", query,
		"args", []any{userID},
		"result", total,
		"error", err,
	)

	return total, err
}
