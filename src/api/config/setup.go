package config

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API base
type APIConfig struct {
	Version     string
	ServiceName string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version:     "dev",
		ServiceName: "pos-service",
	}
}

var startedAt = time.Now()

// SetupAPIModule registra health check y el índice de rutas de la API
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
			"version": cfg.Version,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	}
	router.GET("/health", health)
	v1.GET("/health", health)

	// Índice de rutas mantenido a mano, útil durante el desarrollo
	router.GET("/api-docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"version": cfg.Version,
			"routes": []string{
				"POST   /api/v1/auth/login",
				"POST   /api/v1/auth/register",
				"GET    /api/v1/checkout/catalog",
				"POST   /api/v1/checkout/sessions",
				"GET    /api/v1/checkout/sessions/:session_id",
				"DELETE /api/v1/checkout/sessions/:session_id",
				"POST   /api/v1/checkout/sessions/:session_id/items",
				"PATCH  /api/v1/checkout/sessions/:session_id/items/:item_id",
				"DELETE /api/v1/checkout/sessions/:session_id/items/:item_id",
				"PUT    /api/v1/checkout/sessions/:session_id/customer",
				"PUT    /api/v1/checkout/sessions/:session_id/payment-method",
				"POST   /api/v1/checkout/sessions/:session_id/finalize",
				"GET    /api/v1/inventory",
				"POST   /api/v1/inventory/products",
				"PUT    /api/v1/inventory/products/:product_id",
				"DELETE /api/v1/inventory/products/:product_id",
				"GET    /api/v1/providers",
				"POST   /api/v1/providers",
				"PUT    /api/v1/providers/:nit",
				"DELETE /api/v1/providers/:nit",
				"GET    /api/v1/invoices",
				"GET    /api/v1/dashboard",
			},
		})
	})
}
