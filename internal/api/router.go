package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"campus-events-backend/config"
	"campus-events-backend/internal/mw"
	"campus-events-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	r.Use(rateLimiter)

	r.GET("/", handler.Health)

	r.POST("/colleges", handler.CreateCollege)
	r.POST("/events", handler.CreateEvent)
	r.GET("/events", handler.ListEvents)
	r.POST("/students", handler.CreateStudent)
	r.GET("/students", handler.ListStudents)
	r.POST("/registrations", handler.CreateRegistration)
	r.POST("/attendance", handler.CreateAttendance)
	r.POST("/feedback", handler.CreateFeedback)

	reports := r.Group("/reports")
	if cfg.Reports.CacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.Reports.CacheTTLSeconds) * time.Second
		cacheStore := cache.New(ttl, 2*ttl)
		reports.Use(mw.Cache(cacheStore, ttl))
	}
	{
		reports.GET("/popularity", handler.ReportPopularity)
		reports.GET("/event/:id", handler.ReportEvent)
		reports.GET("/attendance-percent", handler.ReportAttendancePercent)
		reports.GET("/avg-feedback", handler.ReportAverageFeedback)
		reports.GET("/student/:id", handler.ReportStudent)
		reports.GET("/top-active", handler.ReportTopActive)
	}

	return r
}
