// Package router wires the HTTP surface: route registration, the auth and
// role guards, and the Redis-backed rate limit and cache layers.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/handler"
	"github.com/ammowing/lawncare-api/internal/middleware"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/queue"
	"github.com/ammowing/lawncare-api/internal/repository"
)

// New builds the Echo instance with every route registered.
func New(cfg config.Config, db *sql.DB, rdb *redis.Client, outbox *queue.Publisher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	services := repository.NewServiceRepo(db)
	quotes := repository.NewQuoteRepo(db)
	appointments := repository.NewAppointmentRepo(db)
	contacts := repository.NewContactRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	stats := repository.NewStatsRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	serviceH := handler.NewServiceHandler(services)
	quoteH := handler.NewQuoteHandler(cfg, quotes, outbox)
	appointmentH := handler.NewAppointmentHandler(cfg, appointments, outbox)
	contactH := handler.NewContactHandler(cfg, contacts, outbox)
	testimonialH := handler.NewTestimonialHandler(cfg, testimonials)
	adminH := handler.NewAdminHandler(cfg, stats)
	healthH := handler.NewHealthHandler(db)

	authn := middleware.JWTAuth(cfg.JWTSecret, users)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	cacheGET := middleware.CacheGET(config.LoadCacheConfig(), rdb)

	e.GET("/healthz", healthH.Check)

	api := e.Group("/api", middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	auth := api.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout, authn)
	auth.GET("/me", authH.Me, authn)

	svc := api.Group("/services")
	svc.GET("", serviceH.List, cacheGET)
	svc.GET("/slug/:slug", serviceH.GetBySlug, cacheGET)
	svc.GET("/:id", serviceH.Get)
	svc.POST("", serviceH.Create, authn, adminOnly)
	svc.PUT("/:id", serviceH.Update, authn, adminOnly)
	svc.DELETE("/:id", serviceH.Delete, authn, adminOnly)

	qt := api.Group("/quotes")
	qt.POST("", quoteH.Create)
	qt.GET("", quoteH.List, authn, adminOnly)
	qt.GET("/:id", quoteH.Get, authn)
	qt.PUT("/:id", quoteH.Update, authn, adminOnly)
	qt.DELETE("/:id", quoteH.Delete, authn, adminOnly)

	appt := api.Group("/appointments")
	appt.POST("", appointmentH.Create)
	appt.GET("", appointmentH.List, authn, adminOnly)
	appt.GET("/user/:user_id", appointmentH.ListByUser, authn)
	appt.GET("/:id", appointmentH.Get, authn)
	appt.PUT("/:id", appointmentH.Update, authn)
	appt.DELETE("/:id", appointmentH.Delete, authn)

	ct := api.Group("/contact")
	ct.POST("", contactH.Create)
	ct.GET("", contactH.List, authn, adminOnly)
	ct.GET("/:id", contactH.Get, authn, adminOnly)
	ct.PUT("/:id/mark-replied", contactH.MarkReplied, authn, adminOnly)
	ct.DELETE("/:id", contactH.Delete, authn, adminOnly)

	tm := api.Group("/testimonials")
	tm.GET("", testimonialH.List, cacheGET)
	tm.GET("/:id", testimonialH.Get)
	tm.POST("", testimonialH.Create)
	tm.PUT("/:id/approve", testimonialH.Approve, authn, adminOnly)
	tm.PUT("/:id/feature", testimonialH.Feature, authn, adminOnly)
	tm.PUT("/:id", testimonialH.Update, authn, adminOnly)
	tm.DELETE("/:id", testimonialH.Delete, authn, adminOnly)

	adm := api.Group("/admin")
	adm.GET("/stats", adminH.DashboardStats, authn, adminOnly)
	adm.GET("/service-area/check", adminH.CheckServiceArea)
	adm.POST("/service-area/check", adminH.CheckServiceArea)

	return e
}
