package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken          = errors.New("username already taken")
	ErrInvalidUsername        = errors.New("username must be 1-30 lowercase letters or digits")
	ErrUsernameAlreadyClaimed = errors.New("username already claimed for this account")
)

// Suggestion defaults
const (
	defaultSuggestionCount = 3  // Suggestions to collect before stopping
	defaultSuggestionTries = 10 // Numeric suffixes to attempt at most
	maxUsernameLength      = 30
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9]+$`)

// NormalizeUsername lowercases and trims a raw candidate. The engine
// below is case-sensitive on the normalized value, so every caller must
// normalize before checking or claiming.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks the normalized candidate's charset and length.
func ValidateUsername(username string) error {
	if len(username) == 0 || len(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// UsernameReader defines the read operations the engine needs.
type UsernameReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.UserDB, error)
}

// UsernameClaimer defines the constrained username assignment.
type UsernameClaimer interface {
	SetUsername(ctx context.Context, externalID, username string) (*models.UserDB, error)
}

// ProfileCacheInvalidator drops a cached profile after a claim.
type ProfileCacheInvalidator interface {
	Delete(ctx context.Context, username string) error
}

// UsernameService handles availability checks and claims.
type UsernameService struct {
	reader   UsernameReader
	claimer  UsernameClaimer
	cache    ProfileCacheInvalidator
	count    int
	maxTries int
}

// NewUsernameService creates a new UsernameService instance.
func NewUsernameService(reader UsernameReader, claimer UsernameClaimer, cache ProfileCacheInvalidator) *UsernameService {
	return &UsernameService{
		reader:   reader,
		claimer:  claimer,
		cache:    cache,
		count:    defaultSuggestionCount,
		maxTries: defaultSuggestionTries,
	}
}

// CheckAvailability reports whether the candidate is free and, when it
// is taken, suggests free alternatives with ascending numeric suffixes.
// The check is read-only and non-transactional: the database unique
// constraint at claim time is the authoritative guard.
func (svc *UsernameService) CheckAvailability(ctx context.Context, candidate string) (*models.UsernameAvailability, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return &models.UsernameAvailability{Available: false, Suggestions: []string{}}, nil
	}

	user, err := svc.reader.GetByUsername(ctx, candidate)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", candidate, "err", err)
		return nil, err
	}
	if user == nil {
		return &models.UsernameAvailability{Available: true, Suggestions: []string{}}, nil
	}

	suggestions, err := svc.suggest(ctx, candidate)
	if err != nil {
		return nil, err
	}

	return &models.UsernameAvailability{Available: false, Suggestions: suggestions}, nil
}

// suggest probes candidate+"1", candidate+"2", ... until count free
// handles are collected or maxTries suffixes were attempted. Fewer than
// count suggestions is not an error.
func (svc *UsernameService) suggest(ctx context.Context, base string) ([]string, error) {
	suggestions := []string{}

	for i := 1; len(suggestions) < svc.count && i <= svc.maxTries; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)

		user, err := svc.reader.GetByUsername(ctx, candidate)
		if err != nil {
			logger.Log.Errorw("failed to probe suggestion", "username", candidate, "err", err)
			return nil, err
		}
		if user == nil {
			suggestions = append(suggestions, candidate)
		}
	}

	return suggestions, nil
}

// Claim assigns the candidate username to the principal's user. The
// advisory read is a fast path only; the unique index enforced in
// SetUsername decides races, so concurrent claims of the same candidate
// leave exactly one winner. A user who already holds a username cannot
// claim another one.
func (svc *UsernameService) Claim(ctx context.Context, principal models.Principal, candidate string) (*models.UserDB, error) {
	if principal.ExternalID == "" {
		return nil, ErrUnauthenticated
	}

	candidate = NormalizeUsername(candidate)
	if err := ValidateUsername(candidate); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByExternalID(ctx, principal.ExternalID)
	if err != nil {
		logger.Log.Errorw("failed to load claiming user", "external_id", principal.ExternalID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if user.Username != nil {
		return nil, ErrUsernameAlreadyClaimed
	}

	existing, err := svc.reader.GetByUsername(ctx, candidate)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", candidate, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	claimed, err := svc.claimer.SetUsername(ctx, principal.ExternalID, candidate)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to claim username", "username", candidate, "err", err)
		return nil, err
	}
	if claimed == nil {
		return nil, ErrUnauthenticated
	}

	if err := svc.cache.Delete(ctx, candidate); err != nil {
		logger.Log.Warnw("failed to invalidate profile cache", "username", candidate, "err", err)
	}

	return claimed, nil
}
