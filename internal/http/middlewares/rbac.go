package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/domain/user"
)

// RequireRole runs after RequireAuth and checks the resolved role. A wrong
// role gets the same login redirect as a missing session; there is no
// distinct forbidden page.
func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := RoleFromContext(ctx)

		if !ok || role != required {
			redirectLogin(ctx)
			return
		}
		ctx.Next()
	}
}

// OptionalRole resolves the viewer's role for public pages without ever
// redirecting. Absent or stale sessions degrade to the customer view.
func (m *AuthMiddleware) OptionalRole() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := user.RolePelanggan

		if raw, err := ctx.Cookie(TokenCookie); err == nil && raw != "" {
			if email, err := m.jwt.Verify(raw); err == nil {
				if u, err := m.users.GetByEmail(ctx.Request.Context(), email); err == nil {
					role = u.Role
					ctx.Set(ctxUserKey, u)
				}
			}
		}

		ctx.Set(ctxRoleKey, role)
		ctx.Next()
	}
}
