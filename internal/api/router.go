package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/config"
	"github.com/urbanmobility/taxi-backend-go/internal/handler"
	"github.com/urbanmobility/taxi-backend-go/internal/middleware"
	"github.com/urbanmobility/taxi-backend-go/internal/repository"
	"github.com/urbanmobility/taxi-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS for the map dashboard
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	tripHandler := handler.NewTripHandler(
		service.NewTripService(repository.NewTripRepository(db), cfg.QueryTimeout))
	statsHandler := handler.NewStatsHandler(
		service.NewStatsService(repository.NewStatsRepository(db), cfg.QueryTimeout))
	zoneHandler := handler.NewZoneHandler(
		service.NewZoneService(repository.NewZoneRepository(db), cfg.QueryTimeout))
	authHandler := handler.NewAuthHandler(
		service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.QueryTimeout))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Taxi Analytics API is running",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		api.GET("/trips", tripHandler.GetTrips)
		api.GET("/stats", statsHandler.GetStats)
		api.GET("/zones", zoneHandler.GetZones)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	return r
}
