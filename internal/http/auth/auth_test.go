package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornada/fornada/internal/http/auth"
)

const secret = "padaria-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestMiddleware(t *testing.T) {
	valid := jwt.MapClaims{"sub": "user-42", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name     string
		secret   string
		header   string
		wantCode int
		wantUser string
	}{
		{
			name:     "Valid",
			secret:   secret,
			header:   "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), valid),
			wantCode: http.StatusOK,
			wantUser: "user-42",
		},
		{name: "Missing", secret: secret, wantCode: http.StatusUnauthorized},
		{
			name:     "WrongSecret",
			secret:   secret,
			header:   "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "WrongAlgorithm",
			secret:   secret,
			header:   "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), valid),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "Expired",
			secret: secret,
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret),
				jwt.MapClaims{"sub": "user-42", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantCode: http.StatusUnauthorized,
		},
		{name: "Disabled", secret: "", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string

			h := auth.Middleware(tt.secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = auth.UserID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}
