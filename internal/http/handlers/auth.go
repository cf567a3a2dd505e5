package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/auth"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/http/middlewares"
	"github.com/rasahub/rasahub/internal/repo/mongo"
	"github.com/rasahub/rasahub/internal/security"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type UserWriter interface {
	Insert(ctx context.Context, u user.User) (string, error)
}

type UserStore interface {
	UserReader
	UserWriter
}

type AuthHandler struct {
	users UserStore
	jwt   *auth.Manager
	cfg   config.Config
}

func NewAuthHandler(users UserStore, jwtManager *auth.Manager, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		users: users,
		jwt:   jwtManager,
		cfg:   cfg,
	}
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	PasswordConfirm string `form:"passwordver" binding:"required"`
	Name            string `form:"nama" binding:"required"`
}

func (h *AuthHandler) LoginPage(ctx *gin.Context) {
	Render(ctx, "login.html", nil)
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindForm(ctx, &req, "/login") {
		return
	}

	// short timeout for the store lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByEmail(cctx, req.Email)

	if err != nil {
		// same message for unknown email and wrong password
		RedirectWithFlash(ctx, "/login", "danger", "Email atau Password salah")
		return
	}

	err = security.CheckPassword(foundUser.PasswordHash, req.Password)

	if err != nil {
		RedirectWithFlash(ctx, "/login", "danger", "Email atau Password salah")
		return
	}

	token, err := h.jwt.Issue(foundUser.Email)

	if err != nil {
		RedirectWithFlash(ctx, "/login", "danger", "Gagal membuat sesi, coba lagi")
		return
	}

	h.setTokenCookie(ctx, token)

	Redirect(ctx, "/profil")
}

func (h *AuthHandler) RegisterPage(ctx *gin.Context) {
	Render(ctx, "register.html", nil)
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if !BindForm(ctx, &req, "/regis") {
		return
	}

	if req.Password != req.PasswordConfirm {
		RedirectWithFlash(ctx, "/regis", "danger", "Password yang anda masukan tidak sama")
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		RedirectWithFlash(ctx, "/regis", "danger", "Pendaftaran gagal, coba lagi")
		return
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        user.PlaceholderContact,
		Address:      user.PlaceholderContact,
		ProfilePhoto: user.DefaultProfilePhoto,
		Role:         user.RolePelanggan,
	}

	_, err = h.users.Insert(cctx, newUser)

	if err != nil {
		if errors.Is(err, mongo.ErrEmailTaken) {
			RedirectWithFlash(ctx, "/regis", "danger", "email sudah terdaftar")
			return
		}

		RedirectWithFlash(ctx, "/regis", "danger", "Pendaftaran gagal, coba lagi")
		return
	}

	RedirectWithFlash(ctx, "/login", "success", "Pendaftaran berhasil")
}

// Logout drops the cookie client-side; the token itself simply ages out.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	h.clearTokenCookie(ctx)
	Redirect(ctx, "/login")
}

func (h *AuthHandler) setTokenCookie(ctx *gin.Context, token string) {
	secure := h.cfg.Env == "prod"

	ctx.SetSameSite(http.SameSiteLaxMode)

	ctx.SetCookie(
		middlewares.TokenCookie,
		token,
		int(h.jwt.TTL().Seconds()),
		"/",
		"",
		secure,
		true, // HttpOnly.
	)
}

func (h *AuthHandler) clearTokenCookie(ctx *gin.Context) {
	secure := h.cfg.Env == "prod"
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(
		middlewares.TokenCookie,
		"",
		-1,
		"/",
		"",
		secure,
		true,
	)
}
