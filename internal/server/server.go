package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"adcraft/internal/creative"
	"adcraft/internal/engine"
	"adcraft/pkg/config"
)

// Campaign is the engine surface the HTTP handlers work against.
type Campaign interface {
	SetBrand(b creative.Brand)
	SetBrief(b creative.Brief)
	Generate(ctx context.Context, req engine.GenerateRequest) (*engine.GenerateResponse, error)
	Localize(ctx context.Context) (map[string][]creative.Creative, error)
	Serve(region string) (*creative.Creative, error)
	Feedback(region, creativeID string, clicked bool)
	Simulate(region string, rounds int) (int, error)
	Dashboard() *engine.DashboardData
}

// NewRouter builds the engine's HTTP API around a campaign.
func NewRouter(campaign Campaign, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	h := NewHandler(campaign, cfg)
	r.GET("/health", h.GetHealth)
	r.POST("/brand", h.SetBrand)
	r.POST("/brief", h.SetBrief)
	r.POST("/generate", h.Generate)
	r.POST("/localize", h.Localize)
	r.GET("/serve", h.Serve)
	r.POST("/feedback", h.Feedback)
	r.POST("/simulate", h.Simulate)
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/config", h.GetConfig)
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
