package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/adapter/handler/middleware"
)

type RouterConfig struct {
	Logger          *zap.Logger
	JWTSecret       string
	AllowedOrigins  []string
	NotesRatePerMin int
}

func NewRouter(cfg RouterConfig, bookings *BookingHandler, stats *StatsHandler, notes *NoteHandler, health *HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(cfg.Logger), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		cfg.Logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	r.GET("/health", health.Get)

	api := r.Group("/api")
	auth := middleware.BearerAuth(cfg.JWTSecret)

	b := api.Group("/bookings", auth)
	{
		b.GET("", bookings.List)
		b.GET("/new", bookings.New)
		b.POST("", bookings.Save)
		b.POST("/derive", bookings.Derive)
		b.GET("/:id", bookings.Get)
		b.GET("/:id/history", bookings.History)
		b.GET("/:id/quotation", bookings.Quotation)
		b.DELETE("/:id", bookings.Delete)
	}

	api.GET("/stats", auth, stats.Get)
	api.POST("/notes", middleware.RateLimit(cfg.NotesRatePerMin, cfg.Logger), auth, notes.Create)

	return r
}
