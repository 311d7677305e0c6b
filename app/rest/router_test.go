package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"auth-api/app/domain"
	mock_port "auth-api/app/mocks"
	"auth-api/app/usecase"
	apperrors "auth-api/app/utils/errors"
)

func newTestRouter(t *testing.T) (*mock_port.MockAuthUsecase, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mock_port.NewMockAuthUsecase(ctrl)

	router := NewRouter(RouterConfig{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuthUsecase: uc,
	})
	return uc, router
}

func doJSON(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterEndpoint_Success(t *testing.T) {
	uc, router := newTestRouter(t)

	uc.EXPECT().
		RegisterUser(gomock.Any(), &domain.RegisterRequest{
			Firstname: "Sipho",
			Lastname:  "Ndlalane",
			Email:     "sipho@email.com",
			Password:  "Password123",
		}).
		Return(&domain.AuthResult{
			User:    &domain.User{ID: "user-1", Email: "sipho@email.com"},
			Session: nil,
			Message: usecase.MsgRegistered,
		}, nil)

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"firstname":"Sipho","lastname":"Ndlalane","email":"sipho@email.com","password":"Password123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, usecase.MsgRegistered, body["message"])
	assert.Nil(t, body["session"], "session must serialize as null before verification")

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sipho@email.com", user["email"])
}

func TestRegisterEndpoint_ValidationFailsBeforeUsecase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed email", `{"firstname":"Sipho","lastname":"Ndlalane","email":"nope","password":"Password123"}`},
		{"short password", `{"firstname":"Sipho","lastname":"Ndlalane","email":"sipho@email.com","password":"short"}`},
		{"missing fields", `{"email":"sipho@email.com","password":"Password123"}`},
		{"malformed JSON", `{"firstname":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT on the usecase: any call fails the test
			_, router := newTestRouter(t)

			rec := doJSON(router, http.MethodPost, "/api/v1/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", body["error"])
			assert.Equal(t, "/api/v1/auth/register", body["path"])
		})
	}
}

func TestRegisterEndpoint_DuplicateUser(t *testing.T) {
	uc, router := newTestRouter(t)

	uc.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.New(apperrors.ErrCodeUserAlreadyExists, "User with this email already exists"))

	rec := doJSON(router, http.MethodPost, "/api/v1/auth/register",
		`{"firstname":"Sipho","lastname":"Ndlalane","email":"sipho@email.com","password":"Password123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(http.StatusConflict), body["statusCode"])
	assert.Equal(t, "USER_ALREADY_EXISTS", body["error"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestVerifyOtpEndpoint(t *testing.T) {
	t.Run("success returns session tokens", func(t *testing.T) {
		uc, router := newTestRouter(t)

		uc.EXPECT().
			VerifyOtp(gomock.Any(), &domain.VerifyOtpRequest{
				Email: "sipho@email.com",
				Token: "123456",
			}).
			Return(&domain.AuthResult{
				User:    &domain.User{ID: "user-1", Email: "sipho@email.com"},
				Session: &domain.Session{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "refresh"},
				Message: usecase.MsgVerified,
			}, nil)

		rec := doJSON(router, http.MethodPost, "/api/v1/auth/verify-otp",
			`{"email":"sipho@email.com","token":"123456"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)

		session, ok := body["session"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "jwt", session["access_token"])
		assert.Equal(t, "bearer", session["token_type"])
	})

	t.Run("non six digit token is rejected locally", func(t *testing.T) {
		_, router := newTestRouter(t)

		rec := doJSON(router, http.MethodPost, "/api/v1/auth/verify-otp",
			`{"email":"sipho@email.com","token":"12345"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body["error"])
	})

	t.Run("wrong code maps to 401", func(t *testing.T) {
		uc, router := newTestRouter(t)

		uc.EXPECT().
			VerifyOtp(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.ErrCodeInvalidOtp, "The OTP code provided is incorrect or has expired"))

		rec := doJSON(router, http.MethodPost, "/api/v1/auth/verify-otp",
			`{"email":"sipho@email.com","token":"654321"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_OTP", decodeBody(t, rec)["error"])
	})
}

func TestResendOtpEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, router := newTestRouter(t)

		uc.EXPECT().
			ResendOtp(gomock.Any(), &domain.ResendOtpRequest{Email: "sipho@email.com"}).
			Return(usecase.MsgOtpSent, nil)

		rec := doJSON(router, http.MethodPost, "/api/v1/auth/resend-otp",
			`{"email":"sipho@email.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, usecase.MsgOtpSent, decodeBody(t, rec)["message"])
	})

	t.Run("provider rate limit maps to 429", func(t *testing.T) {
		uc, router := newTestRouter(t)

		uc.EXPECT().
			ResendOtp(gomock.Any(), gomock.Any()).
			Return("", apperrors.New(apperrors.ErrCodeRateLimitExceeded,
				"Too many OTP requests. Please wait 60 seconds before trying again."))

		rec := doJSON(router, http.MethodPost, "/api/v1/auth/resend-otp",
			`{"email":"sipho@email.com"}`)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["error"])
		assert.Contains(t, body["message"], "60 seconds")
	})
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "Authentication API", body["service"])
}

func TestUnknownRoute(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ENDPOINT_NOT_FOUND", body["error"])
	assert.Contains(t, body["message"], "Available endpoints")
	assert.Equal(t, "/api/v1/auth/nonexistent", body["path"])
}

func TestWrongMethod(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/register", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeBody(t, rec)["error"])
}

func TestSecurityHeadersPresent(t *testing.T) {
	_, router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/v1/auth/health", "")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}
