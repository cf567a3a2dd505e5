package middlewares

const (
	// TokenCookie is the session cookie the guards read and the login
	// handler sets.
	TokenCookie = "token"

	ctxUserKey = "auth.user"
	ctxRoleKey = "auth.role"

	CtxRequestID = "request_id"
)
