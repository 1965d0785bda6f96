package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/lynkr/lynkr-backend/internal/services"
)

func TestCheckUsernameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockAvailabilityChecker)
		expectedCode int
		expectedBody CheckUsernameResponse
	}{
		{
			name:  "available",
			query: "?username=john",
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "john").
					Return(&models.UsernameAvailability{Available: true, Suggestions: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: CheckUsernameResponse{Available: true, Suggestions: []string{}},
		},
		{
			name:  "taken with suggestions",
			query: "?username=john",
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "john").
					Return(&models.UsernameAvailability{Available: false, Suggestions: []string{"john1", "john2", "john3"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: CheckUsernameResponse{Available: false, Suggestions: []string{"john1", "john2", "john3"}},
		},
		{
			name:  "normalized before checking",
			query: "?username=%20John%20",
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "john").
					Return(&models.UsernameAvailability{Available: true, Suggestions: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: CheckUsernameResponse{Available: true, Suggestions: []string{}},
		},
		{
			name:  "empty candidate",
			query: "",
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "").
					Return(&models.UsernameAvailability{Available: false, Suggestions: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: CheckUsernameResponse{Available: false, Suggestions: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAvailabilityChecker(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCheckUsernameHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/username/check"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp CheckUsernameResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestCheckUsernameHandler_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAvailabilityChecker(ctrl)
	mockSvc.EXPECT().CheckAvailability(gomock.Any(), "john").
		Return(nil, errors.New("db down"))

	handler := NewCheckUsernameHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/username/check?username=john", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestClaimUsernameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := models.Principal{ExternalID: "ext-1"}

	authOK := func(tok *MockClaimTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tok.EXPECT().GetPrincipal(gomock.Any(), "token").Return(&principal, nil)
	}

	tests := []struct {
		name          string
		username      string
		rawBody       bool
		mockSetup     func(tok *MockClaimTokener, svc *MockClaimer)
		expectedCode  int
		expectedError string
	}{
		{
			name:     "success",
			username: "john",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
				claimed := "john"
				svc.EXPECT().Claim(gomock.Any(), principal, "john").
					Return(&models.UserDB{ExternalID: "ext-1", Username: &claimed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:    "invalid json",
			rawBody: true,
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:     "invalid username",
			username: "John!Doe",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
				svc.EXPECT().Claim(gomock.Any(), principal, "John!Doe").
					Return(nil, services.ErrInvalidUsername)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid username",
		},
		{
			name:     "taken",
			username: "john",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
				svc.EXPECT().Claim(gomock.Any(), principal, "john").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already taken",
		},
		{
			name:     "already claimed",
			username: "john",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
				svc.EXPECT().Claim(gomock.Any(), principal, "john").
					Return(nil, services.ErrUsernameAlreadyClaimed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already claimed for this account",
		},
		{
			name:     "internal error",
			username: "john",
			mockSetup: func(tok *MockClaimTokener, svc *MockClaimer) {
				authOK(tok)
				svc.EXPECT().Claim(gomock.Any(), principal, "john").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewMockClaimTokener(ctrl)
			svc := NewMockClaimer(ctrl)
			tt.mockSetup(tok, svc)

			handler := NewClaimUsernameHandler(svc, tok)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/username/claim", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(ClaimUsernameRequest{Username: tt.username})
				req = httptest.NewRequest(http.MethodPost, "/api/v1/username/claim", bytes.NewBuffer(bodyBytes))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp UsernameErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
