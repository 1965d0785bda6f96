package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// ErrProfileNotFound is returned when no claimed profile exists for a
// username.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileUserReader defines the user reads the profile page needs.
type ProfileUserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.UserDB, error)
}

// ProfileLinkReader defines the link reads the profile page needs.
type ProfileLinkReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.LinkDB, error)
	ListSocialByUserID(ctx context.Context, userID uuid.UUID) ([]models.SocialLinkDB, error)
}

// ProfileCache caches assembled profiles by username.
type ProfileCache interface {
	Get(ctx context.Context, username string) (*models.Profile, error)
	Set(ctx context.Context, username string, profile *models.Profile) error
}

// ProfileService assembles public profile pages, cache-aside through
// Redis. Cache errors degrade to database reads, never to failures.
type ProfileService struct {
	users ProfileUserReader
	links ProfileLinkReader
	cache ProfileCache
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users ProfileUserReader, links ProfileLinkReader, cache ProfileCache) *ProfileService {
	return &ProfileService{
		users: users,
		links: links,
		cache: cache,
	}
}

// GetByUsername returns the public profile for a claimed username:
// the user with their links and social links.
func (svc *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	if cached, err := svc.cache.Get(ctx, username); err == nil && cached != nil {
		return cached, nil
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load profile user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	links, err := svc.links.ListByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to load profile links", "username", username, "err", err)
		return nil, err
	}

	socialLinks, err := svc.links.ListSocialByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to load profile social links", "username", username, "err", err)
		return nil, err
	}

	profile := &models.Profile{
		User:        *user,
		Links:       links,
		SocialLinks: socialLinks,
	}

	if err := svc.cache.Set(ctx, username, profile); err != nil {
		logger.Log.Warnw("failed to cache profile", "username", username, "err", err)
	}

	return profile, nil
}

// GetOwn returns the profile owner's own user record, e.g. for the
// dashboard header showing the current username and bio.
func (svc *ProfileService) GetOwn(ctx context.Context, principal models.Principal) (*models.UserDB, error) {
	if principal.ExternalID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := svc.users.GetByExternalID(ctx, principal.ExternalID)
	if err != nil {
		logger.Log.Errorw("failed to load own profile", "external_id", principal.ExternalID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
