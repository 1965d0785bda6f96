package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// RedirectLinkGetter defines the interface that the repository must implement.
type RedirectLinkGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.LinkDB, error)
}

// ClickLogger records link clicks without blocking the redirect.
type ClickLogger interface {
	LogLinkClick(ctx context.Context, linkID uuid.UUID)
}

// ClickErrorResponse represents an error response for click redirects
// swagger:model ClickErrorResponse
type ClickErrorResponse struct {
	// Error message
	// default: Link not found
	Error string `json:"error"`
}

// NewClickRedirectHandler returns an HTTP handler that redirects a
// visitor to a link's target and records the click asynchronously.
// @Summary Follow a link
// @Description Redirects to the link's target URL and records the click. Recording never delays or fails the redirect.
// @Tags links
// @Produce json
// @Param linkID path string true "Link identifier"
// @Success 302 "Redirect to the link target"
// @Failure 404 {object} handlers.ClickErrorResponse "Link not found"
// @Failure 500 {object} handlers.ClickErrorResponse "Internal server error"
// @Router /r/{linkID} [get]
func NewClickRedirectHandler(
	links RedirectLinkGetter,
	clicks ClickLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		linkID, err := uuid.Parse(chi.URLParam(r, "linkID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ClickErrorResponse{Error: "Link not found"})
			return
		}

		link, err := links.GetByID(ctx, linkID)
		if err != nil {
			logger.Log.Errorw("failed to load link", "link_id", linkID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClickErrorResponse{Error: "Internal server error"})
			return
		}
		if link == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ClickErrorResponse{Error: "Link not found"})
			return
		}

		clicks.LogLinkClick(ctx, link.ID)

		http.Redirect(w, r, link.URL, http.StatusFound)
	}
}
