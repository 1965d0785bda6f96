package services

import (
	"context"
	"errors"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// Error variables
var (
	ErrUnauthenticated    = errors.New("no authenticated user found")
	ErrSessionUnavailable = errors.New("no authenticated session could be materialized")
)

// UserUpserter defines the write operation the resolver needs.
type UserUpserter interface {
	Upsert(ctx context.Context, principal models.Principal) (*models.UserDB, error)
}

// IdentityService maps an externally-authenticated principal to an
// internal user record, creating it on first sight.
type IdentityService struct {
	writer UserUpserter
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(writer UserUpserter) *IdentityService {
	return &IdentityService{writer: writer}
}

// Resolve upserts the user keyed by the principal's external identity
// id, refreshing the mutable display fields and leaving the username
// untouched. Repeated calls with an unchanged principal produce no
// observable change. A store failure surfaces as ErrSessionUnavailable
// and the caller treats the request as unauthenticated.
func (svc *IdentityService) Resolve(ctx context.Context, principal models.Principal) (*models.UserDB, error) {
	if principal.ExternalID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := svc.writer.Upsert(ctx, principal)
	if err != nil {
		logger.Log.Errorw("failed to resolve principal", "external_id", principal.ExternalID, "err", err)
		return nil, ErrSessionUnavailable
	}

	return user, nil
}
