package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lynkr/lynkr-backend/internal/models"
)

// Claims is the token payload the identity provider signs for an
// authenticated principal. The external identity id lives in the
// subject claim.
type Claims struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims
}

// JWT verifies principal tokens issued by the identity provider and,
// for tests and local tooling, can also issue them.
type JWT struct {
	SecretKey string        // Shared secret for HS256 verification
	Exp       time.Duration // Token lifetime used by Generate
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed principal token for the given principal
func (j *JWT) Generate(ctx context.Context, principal models.Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     principal.Email,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		AvatarURL: principal.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ExternalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetPrincipal parses the token string and returns the asserted
// principal if the token is valid.
func (j *JWT) GetPrincipal(ctx context.Context, tokenString string) (*models.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("subject not found in token")
	}

	return &models.Principal{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		FirstName:  claims.FirstName,
		LastName:   claims.LastName,
		AvatarURL:  claims.AvatarURL,
	}, nil
}

// Validate checks that the token string is a valid principal token
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetPrincipal(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
