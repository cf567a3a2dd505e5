package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rasahub/rasahub/internal/auth"
	"github.com/rasahub/rasahub/internal/cache"
	"github.com/rasahub/rasahub/internal/config"
	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/http/handlers"
	"github.com/rasahub/rasahub/internal/http/middlewares"
	"github.com/rasahub/rasahub/internal/observability"
	"github.com/rasahub/rasahub/internal/repo/mongo"
	"github.com/rasahub/rasahub/internal/sales"
	"github.com/rasahub/rasahub/internal/storage"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterDeps struct {
	Cfg          config.Config
	Database     *driver.Database
	SalesCache   *sales.Cache
	Prom         *observability.Prom
	JWT          *auth.Manager
	ProfileSaver *storage.Saver
	MenuSaver    *storage.Saver
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.MaxBodyBytes(8 << 20)) // image uploads cap the body
	r.Use(otelgin.Middleware("rasahub"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./static")

	// health
	ping := func() error {
		if deps.Database == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return deps.Database.Client().Ping(ctx, nil)
	}

	health := handlers.NewHealthHandler(ping)
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// wire up repositories
	usersRepo := mongo.NewUsersRepo(deps.Database, deps.Prom)
	menusRepo := mongo.NewMenusRepo(deps.Database, deps.Prom)

	listing := cache.NewMenuListing(30 * time.Second)

	// wire up handlers
	authHandler := handlers.NewAuthHandler(usersRepo, deps.JWT, deps.Cfg)
	pagesHandler := handlers.NewPagesHandler(menusRepo, listing)
	profileHandler := handlers.NewProfileHandler(usersRepo, deps.ProfileSaver)
	menusHandler := handlers.NewMenusHandler(menusRepo, deps.MenuSaver, listing)
	dashboardHandler := handlers.NewDashboardHandler(usersRepo, menusRepo, deps.SalesCache)
	salesHandler := handlers.NewSalesHandler(deps.SalesCache)

	guard := middlewares.NewAuthMiddleware(deps.JWT, usersRepo)

	// public pages; the viewer role only selects the navigation variant
	public := r.Group("/", guard.OptionalRole())
	{
		public.GET("/", pagesHandler.Index)
		public.GET("/menu", pagesHandler.Menu)
		public.GET("/detail_menu/:id", pagesHandler.MenuDetail)
		public.GET("/tentang", pagesHandler.About)
		public.GET("/pesanan", pagesHandler.Orders)
		public.GET("/bayar", pagesHandler.Payment)
		public.GET("/keranjang", pagesHandler.Cart)
		public.GET("/checkout", pagesHandler.Checkout)

		public.GET("/login", authHandler.LoginPage)
		public.POST("/login", authHandler.Login)
		public.GET("/regis", authHandler.RegisterPage)
		public.POST("/regis", authHandler.Register)
		public.GET("/logout", authHandler.Logout)

		public.GET("/sales_data", salesHandler.Data)
	}

	// authenticated pages
	authed := r.Group("/", guard.RequireAuth())
	{
		authed.GET("/profil", profileHandler.Show)
		authed.GET("/editProfil", profileHandler.EditForm)
		authed.POST("/editProfil", profileHandler.Update)
	}

	// admin pages
	admin := r.Group("/", guard.RequireAuth(), guard.RequireRole(user.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardHandler.Dashboard)
		admin.GET("/kelolaMenu", menusHandler.Manage)
		admin.POST("/tambahMenu", menusHandler.Add)
		admin.GET("/editMenu/:id", menusHandler.EditForm)
		admin.POST("/editMenu/:id", menusHandler.Update)
		admin.POST("/hapusMenu/:id", menusHandler.Delete)
		admin.GET("/kelolaPesanan", dashboardHandler.ManageOrders)
		admin.GET("/kelolaRekening", dashboardHandler.ManageAccounts)
		admin.GET("/kelolaAdmin", dashboardHandler.ManageAdmins)
	}

	return r
}
