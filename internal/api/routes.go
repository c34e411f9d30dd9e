package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jroosing/bindman/internal/api/handlers"
	"github.com/jroosing/bindman/internal/api/middleware"
	"github.com/jroosing/bindman/internal/config"

	_ "github.com/jroosing/bindman/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/audit", h.ListAudit)

	api.GET("/config", h.GetConfig)
	api.PUT("/config", h.PutConfig)
	api.POST("/config/reload", h.ReloadConfig)

	api.GET("/zones", h.ListZones)
	api.POST("/zones", h.CreateZone)
	api.GET("/zones/:name", h.GetZone)
	api.PUT("/zones/:name", h.UpdateZone)
	api.DELETE("/zones/:name", h.DeleteZone)

	api.GET("/zones/:name/recordsets", h.ListRecordSets)
	api.PUT("/zones/:name/recordsets", h.ReplaceRecordSets)
	api.GET("/zones/:name/export", h.ExportZone)
}
