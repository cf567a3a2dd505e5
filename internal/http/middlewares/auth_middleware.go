package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/domain/user"
)

// Keep these interfaces small so tests can fake them easily.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type AuthMiddleware struct {
	jwt   TokenVerifier
	users UserResolver
}

func NewAuthMiddleware(jwt TokenVerifier, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, users: users}
}

// redirectLogin is the single failure path for every guard: unauthorized is
// indistinguishable from unauthenticated at the HTTP level.
func redirectLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, "/login")
	ctx.Abort()
}

// RequireAuth extracts the session cookie, verifies it, and resolves the
// user record by the embedded email. Any failure redirects to the login
// page; on success the record rides on the context for the handler.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, err := ctx.Cookie(TokenCookie)

		if err != nil || raw == "" {
			redirectLogin(ctx)
			return
		}

		email, err := m.jwt.Verify(raw)

		if err != nil {
			// expired and invalid collapse to the same redirect
			redirectLogin(ctx)
			return
		}

		u, err := m.users.GetByEmail(ctx.Request.Context(), email)

		if err != nil {
			// covers a user deleted after token issuance
			redirectLogin(ctx)
			return
		}

		ctx.Set(ctxUserKey, u)
		ctx.Set(ctxRoleKey, u.Role)

		ctx.Next()
	}
}

// Helpers so handlers don't need to know the magic keys.

func CurrentUser(ctx *gin.Context) (user.User, bool) {
	v, ok := ctx.Get(ctxUserKey)
	if !ok {
		return user.User{}, false
	}
	u, ok := v.(user.User)
	return u, ok
}

func RoleFromContext(ctx *gin.Context) (user.Role, bool) {
	v, ok := ctx.Get(ctxRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
