package principal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignAndParse(t *testing.T) {
	v := NewVerifier("test-signing-key")

	token, err := v.Sign(Principal{ID: 7, Role: "branch_admin", BranchID: 3}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	p, err := v.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "branch_admin", p.Role)
	assert.Equal(t, 3, p.BranchID)
}

func TestParseInvalid(t *testing.T) {
	v := NewVerifier("test-signing-key")

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "Garbage token",
			token: func() string { return "not-a-token" },
		},
		{
			name: "Wrong signing key",
			token: func() string {
				other := NewVerifier("another-key")
				token, _ := other.Sign(Principal{ID: 1, Role: "customer"}, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := v.Sign(Principal{ID: 1, Role: "customer"}, time.Now().Add(-time.Hour))
				return token
			},
		},
		{
			name: "Zero user id",
			token: func() string {
				token, _ := v.Sign(Principal{ID: 0, Role: "customer"}, time.Now().Add(time.Hour))
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Parse(tt.token())
			assert.Error(t, err)
		})
	}
}

func TestMiddleware(t *testing.T) {
	v := NewVerifier("test-signing-key")
	token, err := v.Sign(Principal{ID: 42, Role: "super_admin", BranchID: 0}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	var got Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{name: "Valid token", authHeader: "Bearer " + token, expectedStatus: http.StatusOK},
		{name: "Missing header", authHeader: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not bearer", authHeader: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "Bad token", authHeader: "Bearer nope", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			Middleware(v)(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, 42, got.ID)
				assert.Equal(t, "super_admin", got.Role)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	v := NewVerifier("test-signing-key")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		role           string
		required       []string
		expectedStatus int
	}{
		{name: "Role allowed", role: "super_admin", required: []string{"super_admin"}, expectedStatus: http.StatusOK},
		{name: "One of several", role: "branch_admin", required: []string{"super_admin", "branch_admin"}, expectedStatus: http.StatusOK},
		{name: "Role denied", role: "customer", required: []string{"super_admin"}, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := v.Sign(Principal{ID: 1, Role: tt.role}, time.Now().Add(time.Hour))
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			Middleware(v)(RequireRole(tt.required...)(next)).ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
