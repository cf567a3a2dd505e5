package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rasahub/rasahub/internal/flash"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFlashRoundTrip(t *testing.T) {
	r := gin.New()

	r.GET("/set", func(ctx *gin.Context) {
		flash.Set(ctx, flash.LevelDanger, "Email atau Password salah")
		ctx.Status(http.StatusOK)
	})

	var got flash.Message
	var ok bool

	r.GET("/read", func(ctx *gin.Context) {
		got, ok = flash.Take(ctx)
		ctx.Status(http.StatusOK)
	})

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/set", nil))

	cookies := w1.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected flash cookie to be set")
	}

	req2 := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	if !ok {
		t.Fatal("expected a pending flash message")
	}
	if got.Level != flash.LevelDanger || got.Text != "Email atau Password salah" {
		t.Fatalf("unexpected message: %+v", got)
	}

	// The read must clear the cookie.
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared after Take")
	}
}

func TestTakeWithoutCookie(t *testing.T) {
	r := gin.New()

	r.GET("/read", func(ctx *gin.Context) {
		if _, ok := flash.Take(ctx); ok {
			t.Error("expected no pending message")
		}
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/read", nil))
}
