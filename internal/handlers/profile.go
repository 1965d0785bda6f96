package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/middlewares"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
}

// VisitLogger records profile visits without blocking the request.
type VisitLogger interface {
	LogProfileVisit(ctx context.Context, userID uuid.UUID, fingerprint string)
}

// ProfileTokener defines only the methods needed by the own-profile handler.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetPrincipal(ctx context.Context, tokenString string) (*models.Principal, error)
}

// OwnProfileGetter defines the interface that the service must implement.
type OwnProfileGetter interface {
	GetOwn(ctx context.Context, principal models.Principal) (*models.UserDB, error)
}

// ProfileErrorResponse represents an error response for profile reads
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

// VisitorFingerprint derives the anonymous visitor identity from the
// client address and user agent. The raw values are never stored.
func VisitorFingerprint(r *http.Request) string {
	sum := sha256.Sum256([]byte(middlewares.ClientIP(r) + "|" + r.UserAgent()))
	return hex.EncodeToString(sum[:])
}

// NewGetProfileHandler returns an HTTP handler for public profile pages.
// @Summary Get a public profile
// @Description Returns the profile owner with their links and social links, and records the visit asynchronously. Recording never delays or fails the page.
// @Tags profile
// @Produce json
// @Param username path string true "Claimed username"
// @Success 200 {object} models.Profile "Public profile"
// @Failure 404 {object} handlers.ProfileErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /{username} [get]
func NewGetProfileHandler(
	svc ProfileGetter,
	visits VisitLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		username := services.NormalizeUsername(chi.URLParam(r, "username"))

		profile, err := svc.GetByUsername(ctx, username)
		if err != nil {
			switch err {
			case services.ErrProfileNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Profile not found"})
			default:
				logger.Log.Errorw("failed to load profile", "username", username, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		visits.LogProfileVisit(ctx, profile.User.ID, VisitorFingerprint(r))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewGetOwnProfileHandler returns an HTTP handler for the signed-in
// user's own record.
// @Summary Get own profile
// @Description Returns the signed-in user's record, including their claimed username when present.
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserDB "Own user record"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /api/v1/profile/me [get]
// @Security BearerAuth
func NewGetOwnProfileHandler(
	svc OwnProfileGetter,
	tokenGetter ProfileTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		principal, err := tokenGetter.GetPrincipal(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get principal from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetOwn(ctx, *principal)
		if err != nil {
			switch err {
			case services.ErrUnauthenticated:
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			default:
				logger.Log.Errorw("failed to load own profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
