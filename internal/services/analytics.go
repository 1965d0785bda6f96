package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

const defaultTopLinkCount = 5

// VisitCounter defines the visit aggregations the dashboard needs.
type VisitCounter interface {
	CountVisits(ctx context.Context, userID uuid.UUID) (int64, error)
	CountVisitsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	CountUniqueVisitors(ctx context.Context, userID uuid.UUID) (int64, error)
	CountDailyVisits(ctx context.Context, userID uuid.UUID, since time.Time) (map[string]int64, error)
}

// LinkStatsReader defines the link aggregations the dashboard needs.
type LinkStatsReader interface {
	TopByUserID(ctx context.Context, userID uuid.UUID, n int) ([]models.TopLink, error)
	MostClickedByUserID(ctx context.Context, userID uuid.UUID) (*models.MostClickedLink, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	SumClicksByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// AnalyticsService computes dashboard aggregates from the raw event log
// and the denormalized link counters. All operations are read-only and
// best-effort: a store failure yields zeroed values, never an error,
// so the dashboard always renders.
type AnalyticsService struct {
	visits VisitCounter
	links  LinkStatsReader
}

// NewAnalyticsService creates a new AnalyticsService instance.
func NewAnalyticsService(visits VisitCounter, links LinkStatsReader) *AnalyticsService {
	return &AnalyticsService{
		visits: visits,
		links:  links,
	}
}

// GetUserAnalytics computes the rolling-window visit counts, unique
// visitor count and link click totals for one user. Click totals come
// from the denormalized link counters, which SaveClick keeps in step
// with the event log.
func (svc *AnalyticsService) GetUserAnalytics(ctx context.Context, userID uuid.UUID) *models.AnalyticsSummary {
	now := time.Now().UTC()
	summary := &models.AnalyticsSummary{}

	summary.ProfileAnalytics.TotalVisits = svc.countVisits(ctx, userID)
	summary.ProfileAnalytics.VisitsLast1Hour = svc.countVisitsSince(ctx, userID, now.Add(-time.Hour))
	summary.ProfileAnalytics.VisitsLast24Hours = svc.countVisitsSince(ctx, userID, now.Add(-24*time.Hour))
	summary.ProfileAnalytics.VisitsLast7Days = svc.countVisitsSince(ctx, userID, now.Add(-7*24*time.Hour))
	summary.ProfileAnalytics.VisitsLast30Days = svc.countVisitsSince(ctx, userID, now.Add(-30*24*time.Hour))

	uniques, err := svc.visits.CountUniqueVisitors(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count unique visitors", "user_id", userID, "err", err)
		uniques = 0
	}
	summary.ProfileAnalytics.UniqueVisitors = uniques

	totalClicks, err := svc.links.SumClicksByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to sum link clicks", "user_id", userID, "err", err)
		totalClicks = 0
	}
	summary.TotalLinkClicks = totalClicks

	totalLinks, err := svc.links.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count links", "user_id", userID, "err", err)
		totalLinks = 0
	}
	summary.TotalLinks = totalLinks

	mostClicked, err := svc.links.MostClickedByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to find most clicked link", "user_id", userID, "err", err)
		mostClicked = nil
	}
	summary.MostClickedLink = mostClicked

	return summary
}

func (svc *AnalyticsService) countVisits(ctx context.Context, userID uuid.UUID) int64 {
	count, err := svc.visits.CountVisits(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count visits", "user_id", userID, "err", err)
		return 0
	}
	return count
}

func (svc *AnalyticsService) countVisitsSince(ctx context.Context, userID uuid.UUID, since time.Time) int64 {
	count, err := svc.visits.CountVisitsSince(ctx, userID, since)
	if err != nil {
		logger.Log.Errorw("failed to count windowed visits", "user_id", userID, "since", since, "err", err)
		return 0
	}
	return count
}

// GetTopLinks returns the user's n links ordered by click count
// descending, ties broken by creation order. Empty on store failure.
func (svc *AnalyticsService) GetTopLinks(ctx context.Context, userID uuid.UUID, n int) []models.TopLink {
	if n <= 0 {
		n = defaultTopLinkCount
	}

	top, err := svc.links.TopByUserID(ctx, userID, n)
	if err != nil {
		logger.Log.Errorw("failed to list top links", "user_id", userID, "err", err)
		return []models.TopLink{}
	}

	return top
}

// GetDailyProfileVisits buckets the user's visits into UTC days for the
// trailing days including today. The series always has exactly days
// entries, contiguous and zero-filled, regardless of how sparse the
// event log is.
func (svc *AnalyticsService) GetDailyProfileVisits(ctx context.Context, userID uuid.UUID, days int) []models.DailyVisits {
	if days <= 0 {
		return []models.DailyVisits{}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	counts, err := svc.visits.CountDailyVisits(ctx, userID, since)
	if err != nil {
		logger.Log.Errorw("failed to bucket daily visits", "user_id", userID, "err", err)
		counts = map[string]int64{}
	}

	series := make([]models.DailyVisits, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, models.DailyVisits{
			Date:   date,
			Visits: counts[date],
		})
	}

	return series
}
