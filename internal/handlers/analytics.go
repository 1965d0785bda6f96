package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/services"
)

// Daily series bounds
const (
	defaultDailyVisitDays = 30
	maxDailyVisitDays     = 365
)

// AnalyticsTokener defines only the methods needed by these handlers.
type AnalyticsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetPrincipal(ctx context.Context, tokenString string) (*models.Principal, error)
}

// AnalyticsUserGetter resolves the signed-in principal to their record.
type AnalyticsUserGetter interface {
	GetOwn(ctx context.Context, principal models.Principal) (*models.UserDB, error)
}

// AnalyticsReader defines the interface that the service must implement.
type AnalyticsReader interface {
	GetUserAnalytics(ctx context.Context, userID uuid.UUID) *models.AnalyticsSummary
	GetTopLinks(ctx context.Context, userID uuid.UUID, n int) []models.TopLink
	GetDailyProfileVisits(ctx context.Context, userID uuid.UUID, days int) []models.DailyVisits
}

// TopLinksResponse lists links ranked by click count
// swagger:model TopLinksResponse
type TopLinksResponse struct {
	// Links ordered by click count descending
	Links []models.TopLink `json:"links"`
}

// DailyVisitsResponse is a contiguous day-by-day visit series
// swagger:model DailyVisitsResponse
type DailyVisitsResponse struct {
	// One entry per UTC day, oldest first, ending today
	Visits []models.DailyVisits `json:"visits"`
}

// AnalyticsErrorResponse represents an error response for analytics reads
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// ownUser authenticates the request and loads the signed-in user.
// A nil user means the error response was already written.
func ownUser(w http.ResponseWriter, r *http.Request, tokenGetter AnalyticsTokener, users AnalyticsUserGetter) *models.UserDB {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Unauthorized"})
		return nil
	}

	principal, err := tokenGetter.GetPrincipal(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get principal from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Unauthorized"})
		return nil
	}

	user, err := users.GetOwn(ctx, *principal)
	if err != nil {
		switch err {
		case services.ErrUnauthenticated:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Unauthorized"})
		default:
			logger.Log.Errorw("failed to load analytics user", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
		}
		return nil
	}

	return user
}

// NewGetAnalyticsHandler returns an HTTP handler for the dashboard summary.
// @Summary Get analytics summary
// @Description Returns rolling-window visit counts, unique visitors, link click totals and the most clicked link for the signed-in user.
// @Tags analytics
// @Produce json
// @Success 200 {object} models.AnalyticsSummary "Analytics summary"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Router /api/v1/analytics [get]
// @Security BearerAuth
func NewGetAnalyticsHandler(
	svc AnalyticsReader,
	users AnalyticsUserGetter,
	tokenGetter AnalyticsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ownUser(w, r, tokenGetter, users)
		if user == nil {
			return
		}

		summary := svc.GetUserAnalytics(r.Context(), user.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}

// NewGetTopLinksHandler returns an HTTP handler for the top-links ranking.
// @Summary Get top links
// @Description Returns the signed-in user's links ranked by click count descending, ties broken by creation order.
// @Tags analytics
// @Produce json
// @Param n query int false "Number of links to return" default(5)
// @Success 200 {object} handlers.TopLinksResponse "Ranked links"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Router /api/v1/analytics/links/top [get]
// @Security BearerAuth
func NewGetTopLinksHandler(
	svc AnalyticsReader,
	users AnalyticsUserGetter,
	tokenGetter AnalyticsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ownUser(w, r, tokenGetter, users)
		if user == nil {
			return
		}

		n, _ := strconv.Atoi(r.URL.Query().Get("n"))

		links := svc.GetTopLinks(r.Context(), user.ID, n)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TopLinksResponse{Links: links})
	}
}

// NewGetDailyVisitsHandler returns an HTTP handler for the daily visit series.
// @Summary Get daily profile visits
// @Description Returns a contiguous day-by-day visit series for the trailing days including today. Days without visits appear with a zero count.
// @Tags analytics
// @Produce json
// @Param days query int false "Trailing days to cover" default(30)
// @Success 200 {object} handlers.DailyVisitsResponse "Daily visit series"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Router /api/v1/analytics/visits/daily [get]
// @Security BearerAuth
func NewGetDailyVisitsHandler(
	svc AnalyticsReader,
	users AnalyticsUserGetter,
	tokenGetter AnalyticsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ownUser(w, r, tokenGetter, users)
		if user == nil {
			return
		}

		days, err := strconv.Atoi(r.URL.Query().Get("days"))
		if err != nil || days <= 0 {
			days = defaultDailyVisitDays
		}
		if days > maxDailyVisitDays {
			days = maxDailyVisitDays
		}

		visits := svc.GetDailyProfileVisits(r.Context(), user.ID, days)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DailyVisitsResponse{Visits: visits})
	}
}
