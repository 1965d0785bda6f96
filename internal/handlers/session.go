package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/services"
)

// SessionTokener defines only the methods needed by this handler.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetPrincipal(ctx context.Context, tokenString string) (*models.Principal, error)
}

// SessionResolver defines the interface that the service must implement.
type SessionResolver interface {
	Resolve(ctx context.Context, principal models.Principal) (*models.UserDB, error)
}

// SessionResponse represents a materialized session
// swagger:model SessionResponse
type SessionResponse struct {
	// The signed-in user, created on first sight
	User *models.UserDB `json:"user"`
}

// SessionErrorResponse represents an error response for session creation
// swagger:model SessionErrorResponse
type SessionErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewSessionHandler returns an HTTP handler that materializes a session.
// @Summary Create or refresh a session
// @Description Upserts the signed-in user keyed by their external identity. Display fields are refreshed on every sign-in; the username is never touched.
// @Tags session
// @Produce json
// @Success 200 {object} handlers.SessionResponse "Session materialized"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.SessionErrorResponse "Session store unavailable"
// @Router /api/v1/session [post]
// @Security BearerAuth
func NewSessionHandler(
	svc SessionResolver,
	tokenGetter SessionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		principal, err := tokenGetter.GetPrincipal(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get principal from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.Resolve(ctx, *principal)
		if err != nil {
			switch err {
			case services.ErrUnauthenticated:
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			case services.ErrSessionUnavailable:
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Session store unavailable"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SessionResponse{User: user})
	}
}
