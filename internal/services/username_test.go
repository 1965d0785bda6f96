package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/repositories"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("  Alice "))
	assert.Equal(t, "bob42", NormalizeUsername("BOB42"))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid short", "a", false},
		{"valid alphanumeric", "alice42", false},
		{"valid max length", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"empty", "", true},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"uppercase", "Alice", true},
		{"underscore", "ali_ce", true},
		{"hyphen", "ali-ce", true},
		{"space inside", "ali ce", true},
		{"unicode", "алиса", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUsername)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUsernameService_CheckAvailability_Empty(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUsernameReader(ctrl)

	// No store access for a blank candidate.
	svc := NewUsernameService(reader, nil, nil)
	res, err := svc.CheckAvailability(ctx, "   ")

	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Suggestions)
}

func TestUsernameService_CheckAvailability_Free(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByUsername(ctx, "john").Return(nil, nil)

	svc := NewUsernameService(reader, nil, nil)
	res, err := svc.CheckAvailability(ctx, "john")

	assert.NoError(t, err)
	assert.True(t, res.Available)
	assert.Empty(t, res.Suggestions)
}

func TestUsernameService_CheckAvailability_TakenWithSuggestions(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taken := &models.UserDB{}

	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByUsername(ctx, "john").Return(taken, nil)
	reader.EXPECT().GetByUsername(ctx, "john1").Return(taken, nil)
	reader.EXPECT().GetByUsername(ctx, "john2").Return(taken, nil)
	reader.EXPECT().GetByUsername(ctx, "john3").Return(taken, nil)
	reader.EXPECT().GetByUsername(ctx, "john4").Return(nil, nil)
	reader.EXPECT().GetByUsername(ctx, "john5").Return(nil, nil)
	reader.EXPECT().GetByUsername(ctx, "john6").Return(nil, nil)

	svc := NewUsernameService(reader, nil, nil)
	res, err := svc.CheckAvailability(ctx, "john")

	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, []string{"john4", "john5", "john6"}, res.Suggestions)
}

func TestUsernameService_CheckAvailability_SuggestionsExhausted(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taken := &models.UserDB{}

	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByUsername(ctx, gomock.Any()).Return(taken, nil).Times(11)

	// Base plus all ten suffixes taken: no suggestions, still no error.
	svc := NewUsernameService(reader, nil, nil)
	res, err := svc.CheckAvailability(ctx, "john")

	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Suggestions)
}

func TestUsernameService_CheckAvailability_ReadError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByUsername(ctx, "john").Return(nil, errors.New("db down"))

	svc := NewUsernameService(reader, nil, nil)
	res, err := svc.CheckAvailability(ctx, "john")

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestUsernameService_Claim(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1", Email: "john@example.com"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	username := "john"
	claimed := &models.UserDB{ExternalID: "ext-1", Username: &username}

	reader := NewMockUsernameReader(ctrl)
	claimer := NewMockUsernameClaimer(ctrl)
	cache := NewMockProfileCacheInvalidator(ctrl)

	reader.EXPECT().GetByExternalID(ctx, "ext-1").Return(&models.UserDB{ExternalID: "ext-1"}, nil)
	reader.EXPECT().GetByUsername(ctx, "john").Return(nil, nil)
	claimer.EXPECT().SetUsername(ctx, "ext-1", "john").Return(claimed, nil)
	cache.EXPECT().Delete(ctx, "john").Return(nil)

	svc := NewUsernameService(reader, claimer, cache)
	user, err := svc.Claim(ctx, principal, "  John ")

	assert.NoError(t, err)
	assert.Equal(t, claimed, user)
}

func TestUsernameService_Claim_Unauthenticated(t *testing.T) {
	ctx := context.Background()

	svc := NewUsernameService(nil, nil, nil)
	user, err := svc.Claim(ctx, models.Principal{}, "john")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, user)
}

func TestUsernameService_Claim_InvalidUsername(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1"}

	svc := NewUsernameService(nil, nil, nil)

	for _, candidate := range []string{"", "  ", "john_doe", "john!", "john doe"} {
		user, err := svc.Claim(ctx, principal, candidate)
		assert.ErrorIs(t, err, ErrInvalidUsername)
		assert.Nil(t, user)
	}
}

func TestUsernameService_Claim_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	held := "old"
	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByExternalID(ctx, "ext-1").Return(&models.UserDB{ExternalID: "ext-1", Username: &held}, nil)

	svc := NewUsernameService(reader, nil, nil)
	user, err := svc.Claim(ctx, principal, "john")

	assert.ErrorIs(t, err, ErrUsernameAlreadyClaimed)
	assert.Nil(t, user)
}

func TestUsernameService_Claim_Taken(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUsernameReader(ctrl)
	reader.EXPECT().GetByExternalID(ctx, "ext-1").Return(&models.UserDB{ExternalID: "ext-1"}, nil)
	reader.EXPECT().GetByUsername(ctx, "john").Return(&models.UserDB{}, nil)

	svc := NewUsernameService(reader, nil, nil)
	user, err := svc.Claim(ctx, principal, "john")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)
}

func TestUsernameService_Claim_RaceLoser(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUsernameReader(ctrl)
	claimer := NewMockUsernameClaimer(ctrl)

	// The advisory read sees the name free, then the unique index
	// rejects the write because a concurrent claim won.
	reader.EXPECT().GetByExternalID(ctx, "ext-1").Return(&models.UserDB{ExternalID: "ext-1"}, nil)
	reader.EXPECT().GetByUsername(ctx, "john").Return(nil, nil)
	claimer.EXPECT().SetUsername(ctx, "ext-1", "john").Return(nil, repositories.ErrUniqueViolation)

	svc := NewUsernameService(reader, claimer, nil)
	user, err := svc.Claim(ctx, principal, "john")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)
}

func TestUsernameService_Claim_CacheDeleteErrorIgnored(t *testing.T) {
	ctx := context.Background()
	principal := models.Principal{ExternalID: "ext-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	username := "john"
	claimed := &models.UserDB{ExternalID: "ext-1", Username: &username}

	reader := NewMockUsernameReader(ctrl)
	claimer := NewMockUsernameClaimer(ctrl)
	cache := NewMockProfileCacheInvalidator(ctrl)

	reader.EXPECT().GetByExternalID(ctx, "ext-1").Return(&models.UserDB{ExternalID: "ext-1"}, nil)
	reader.EXPECT().GetByUsername(ctx, "john").Return(nil, nil)
	claimer.EXPECT().SetUsername(ctx, "ext-1", "john").Return(claimed, nil)
	cache.EXPECT().Delete(ctx, "john").Return(errors.New("redis down"))

	svc := NewUsernameService(reader, claimer, cache)
	user, err := svc.Claim(ctx, principal, "john")

	assert.NoError(t, err)
	assert.Equal(t, claimed, user)
}
