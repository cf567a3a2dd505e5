package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/auth"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/http/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	verifyFn func(token string) (string, error)
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	return "", auth.ErrTokenInvalid
}

var errNoSuchUser = errors.New("user not found")

type fakeUsers struct {
	getFn func(ctx context.Context, email string) (user.User, error)
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, email)
	}
	return user.User{}, nil
}

func okVerifier(email string) *fakeVerifier {
	return &fakeVerifier{verifyFn: func(string) (string, error) { return email, nil }}
}

func storedUser(u user.User) *fakeUsers {
	return &fakeUsers{getFn: func(ctx context.Context, email string) (user.User, error) {
		if email == u.Email {
			return u, nil
		}
		return user.User{}, errNoSuchUser
	}}
}

func TestRequireAuth(t *testing.T) {
	alice := user.User{ID: "1", Email: "alice@example.com", Role: user.RolePelanggan}

	tests := []struct {
		name         string
		cookie       string
		verifier     *fakeVerifier
		users        *fakeUsers
		wantStatus   int
		wantLocation string
		wantInvoked  bool
	}{
		{
			name:         "missing_cookie",
			verifier:     okVerifier(alice.Email),
			users:        storedUser(alice),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:   "invalid_token",
			cookie: "garbled",
			verifier: &fakeVerifier{verifyFn: func(string) (string, error) {
				return "", auth.ErrTokenInvalid
			}},
			users:        storedUser(alice),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:   "expired_token",
			cookie: "stale",
			verifier: &fakeVerifier{verifyFn: func(string) (string, error) {
				return "", auth.ErrTokenExpired
			}},
			users:        storedUser(alice),
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:     "user_deleted_after_issuance",
			cookie:   "valid",
			verifier: okVerifier("ghost@example.com"),
			users: &fakeUsers{getFn: func(ctx context.Context, email string) (user.User, error) {
				return user.User{}, errNoSuchUser
			}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:        "success",
			cookie:      "valid",
			verifier:    okVerifier(alice.Email),
			users:       storedUser(alice),
			wantStatus:  http.StatusOK,
			wantInvoked: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			m := middlewares.NewAuthMiddleware(tt.verifier, tt.users)

			invoked := false

			r := gin.New()
			r.GET("/profil", m.RequireAuth(), func(ctx *gin.Context) {
				invoked = true

				u, ok := middlewares.CurrentUser(ctx)
				if !ok {
					t.Error("expected resolved user on context")
				}
				if u.Email != alice.Email {
					t.Errorf("got user %q, want %q", u.Email, alice.Email)
				}

				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/profil", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && w.Header().Get("Location") != tt.wantLocation {
				t.Fatalf("got location %q, want %q", w.Header().Get("Location"), tt.wantLocation)
			}
			if invoked != tt.wantInvoked {
				t.Fatalf("handler invoked = %v, want %v", invoked, tt.wantInvoked)
			}
		})
	}
}

func TestRequireRoleAdmin(t *testing.T) {
	tests := []struct {
		name        string
		u           user.User
		wantStatus  int
		wantInvoked bool
	}{
		{
			name:        "admin_passes",
			u:           user.User{ID: "1", Email: "root@example.com", Role: user.RoleAdmin},
			wantStatus:  http.StatusOK,
			wantInvoked: true,
		},
		{
			name:       "customer_redirected",
			u:          user.User{ID: "2", Email: "alice@example.com", Role: user.RolePelanggan},
			wantStatus: http.StatusSeeOther,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			m := middlewares.NewAuthMiddleware(okVerifier(tt.u.Email), storedUser(tt.u))

			invoked := false

			r := gin.New()
			r.GET("/dashboard", m.RequireAuth(), m.RequireRole(user.RoleAdmin), func(ctx *gin.Context) {
				invoked = true
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.AddCookie(&http.Cookie{Name: "token", Value: "valid"})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
			if invoked != tt.wantInvoked {
				t.Fatalf("handler invoked = %v, want %v", invoked, tt.wantInvoked)
			}
			if !tt.wantInvoked && w.Header().Get("Location") != "/login" {
				t.Fatalf("expected redirect to /login, got %q", w.Header().Get("Location"))
			}
		})
	}
}

func TestOptionalRoleNeverRedirects(t *testing.T) {
	m := middlewares.NewAuthMiddleware(&fakeVerifier{}, &fakeUsers{})

	var gotRole user.Role

	r := gin.New()
	r.GET("/", m.OptionalRole(), func(ctx *gin.Context) {
		gotRole, _ = middlewares.RoleFromContext(ctx)
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if gotRole != user.RolePelanggan {
		t.Fatalf("got role %q, want pelanggan fallback", gotRole)
	}
}
