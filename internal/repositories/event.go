package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// ErrLinkNotFound is returned when a click references a link that no
// longer exists.
var ErrLinkNotFound = errors.New("link not found")

type EventWriteRepository struct {
	db *sqlx.DB
}

func NewEventWriteRepository(db *sqlx.DB) *EventWriteRepository {
	return &EventWriteRepository{db: db}
}

// SaveVisit appends one profile visit event.
func (r *EventWriteRepository) SaveVisit(ctx context.Context, event models.VisitEvent) error {
	const query = `
		INSERT INTO profile_visit_events (user_id, fingerprint, visited_at)
		VALUES ($1, $2, $3)
	`
	args := []any{event.UserID, event.Fingerprint, event.VisitedAt}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("visit event write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveClick appends one link click event and increments the link's
// denormalized click counter in the same transaction, so the counter
// and the event log cannot diverge.
func (r *EventWriteRepository) SaveClick(ctx context.Context, event models.ClickEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const updateQuery = `
		UPDATE links SET click_count = click_count + 1, updated_at = NOW() WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, updateQuery, event.LinkID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrLinkNotFound
	}

	const insertQuery = `
		INSERT INTO link_click_events (link_id, clicked_at) VALUES ($1, $2)
	`
	if _, err := tx.ExecContext(ctx, insertQuery, event.LinkID, event.ClickedAt); err != nil {
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("click event write",
		"link_id", event.LinkID,
		"clicked_at", event.ClickedAt,
		"error", err,
	)

	return err
}

type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// CountVisits returns the total number of recorded visits for a user.
func (r *EventReadRepository) CountVisits(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM profile_visit_events WHERE user_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("visit count",
		"query", query,
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// CountVisitsSince returns the number of visits in [since, now].
func (r *EventReadRepository) CountVisitsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM profile_visit_events WHERE user_id = $1 AND visited_at >= $2`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID, since)

	logger.Log.Infow("windowed visit count",
		"query", query,
		"args", []any{userID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// CountUniqueVisitors returns the number of distinct visitor
// fingerprints across all of the user's visits.
func (r *EventReadRepository) CountUniqueVisitors(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(DISTINCT fingerprint) FROM profile_visit_events WHERE user_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("unique visitor count",
		"query", query,
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// CountDailyVisits buckets the user's visits since the given time into
// UTC days. Days with no visits are absent from the result; callers
// fill the gaps.
func (r *EventReadRepository) CountDailyVisits(ctx context.Context, userID uuid.UUID, since time.Time) (map[string]int64, error) {
	const query = `
		SELECT to_char(visited_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS visits
		FROM profile_visit_events
		WHERE user_id = $1 AND visited_at >= $2
		GROUP BY day
	`

	rows, err := r.db.QueryxContext(ctx, query, userID, since)

	logger.Log.Infow("daily visit count",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	daily := make(map[string]int64)
	for rows.Next() {
		var day string
		var visits int64
		if err := rows.Scan(&day, &visits); err != nil {
			return nil, err
		}
		daily[day] = visits
	}

	return daily, rows.Err()
}
