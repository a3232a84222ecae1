package config

import (
	"time"

	"pos/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
)

// Config es la configuración del servicio leída del entorno
type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	BackendAPIURL     string        `envconfig:"BACKEND_API_URL" default:"https://awohconsulting.com/api"`
	BackendTimeout    time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	JWTSecret         string        `envconfig:"JWT_SECRET" default:"cambiar-en-produccion"`
	TokenTTL          time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	PrometheusEnabled bool          `envconfig:"PROMETHEUS_ENABLED" default:"false"`
}

// Load procesa las variables de entorno hacia la configuración
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GzipSharedConfig contiene la configuración para el módulo compartido de compresión
type GzipSharedConfig struct {
	EnableGzip            bool
	AlwaysTryDecompress   bool
	ForceGzipCompression  bool
	ForceGzipCheckSupport bool     // Verifica si el cliente soporta gzip antes de forzar compresión
	ForceGzipPaths        []string // Rutas donde forzar compresión
	GzipExcludedPaths     []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:            true,
		AlwaysTryDecompress:   true,
		ForceGzipCompression:  false,
		ForceGzipCheckSupport: true,
		GzipExcludedPaths:     []string{"/health", "/metrics", "/api-docs"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig) {
	// Intentar descomprimir todas las solicitudes entrantes si está habilitado
	if config.AlwaysTryDecompress {
		router.Use(middleware.GzipReader())
	}

	// Aplicar middleware de compresión gzip si está habilitado
	if config.EnableGzip {
		gzipOpts := middleware.GzipOptions{
			ExcludedPaths: config.GzipExcludedPaths,
		}
		router.Use(middleware.GzipMiddleware(gzipOpts))

		// Rutas que siempre deben usar compresión gzip
		if config.ForceGzipCompression && len(config.ForceGzipPaths) > 0 {
			forceGzipOpts := middleware.ForceGzipOptions{
				CheckClientSupport: config.ForceGzipCheckSupport,
			}
			for _, path := range config.ForceGzipPaths {
				router.Group(path).Use(middleware.ForceGzipMiddleware(forceGzipOpts))
			}
		}
	}
}
