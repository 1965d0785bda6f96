package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/services"
)

// AvailabilityChecker defines the interface that the service must implement.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, candidate string) (*models.UsernameAvailability, error)
}

// ClaimTokener defines only the methods needed by the claim handler.
type ClaimTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetPrincipal(ctx context.Context, tokenString string) (*models.Principal, error)
}

// Claimer defines the interface that the service must implement.
type Claimer interface {
	Claim(ctx context.Context, principal models.Principal, candidate string) (*models.UserDB, error)
}

// CheckUsernameResponse reports whether a username is free
// swagger:model CheckUsernameResponse
type CheckUsernameResponse struct {
	// True when no user currently holds the username
	Available bool `json:"available"`

	// Free alternatives when the username is taken, possibly empty
	Suggestions []string `json:"suggestions"`
}

// ClaimUsernameRequest represents the JSON body for claiming a username
// swagger:model ClaimUsernameRequest
type ClaimUsernameRequest struct {
	// Username to claim
	// required: true
	// default: john
	Username string `json:"username"`
}

// ClaimUsernameResponse represents a successful claim
// swagger:model ClaimUsernameResponse
type ClaimUsernameResponse struct {
	// Success message
	// default: Username claimed successfully
	Message string `json:"message"`

	// The user with the newly assigned username
	User *models.UserDB `json:"user"`
}

// UsernameErrorResponse represents an error response for username operations
// swagger:model UsernameErrorResponse
type UsernameErrorResponse struct {
	// Error message
	// default: Username already taken
	Error string `json:"error"`
}

// NewCheckUsernameHandler returns an HTTP handler for availability checks.
// @Summary Check username availability
// @Description Reports whether the username is free. When it is taken, up to three free alternatives with numeric suffixes are suggested. The check is advisory; the claim endpoint decides races.
// @Tags username
// @Produce json
// @Param username query string true "Username candidate"
// @Success 200 {object} handlers.CheckUsernameResponse "Availability result"
// @Failure 500 {object} handlers.UsernameErrorResponse "Internal server error"
// @Router /api/v1/username/check [get]
// @Security BearerAuth
func NewCheckUsernameHandler(svc AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		candidate := services.NormalizeUsername(r.URL.Query().Get("username"))

		res, err := svc.CheckAvailability(ctx, candidate)
		if err != nil {
			logger.Log.Errorw("failed to check username", "username", candidate, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CheckUsernameResponse{
			Available:   res.Available,
			Suggestions: res.Suggestions,
		})
	}
}

// NewClaimUsernameHandler returns an HTTP handler for claiming a username.
// @Summary Claim a username
// @Description Permanently assigns a free username to the signed-in user. At most one user ever holds a username and a user claims at most once. Concurrent claims of the same username leave exactly one winner.
// @Tags username
// @Accept json
// @Produce json
// @Param request body handlers.ClaimUsernameRequest true "Claim request"
// @Success 200 {object} handlers.ClaimUsernameResponse "Username claimed"
// @Failure 400 {object} handlers.UsernameErrorResponse "Invalid username"
// @Failure 401 {object} handlers.UsernameErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.UsernameErrorResponse "Username taken or already claimed"
// @Router /api/v1/username/claim [post]
// @Security BearerAuth
func NewClaimUsernameHandler(
	svc Claimer,
	tokenGetter ClaimTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Unauthorized"})
			return
		}

		principal, err := tokenGetter.GetPrincipal(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get principal from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ClaimUsernameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode claim request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Claim(ctx, *principal, req.Username)
		if err != nil {
			switch err {
			case services.ErrInvalidUsername:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Invalid username"})
			case services.ErrUnauthenticated:
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Unauthorized"})
			case services.ErrUsernameTaken:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Username already taken"})
			case services.ErrUsernameAlreadyClaimed:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Username already claimed for this account"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UsernameErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClaimUsernameResponse{
			Message: "Username claimed successfully",
			User:    user,
		})
	}
}
