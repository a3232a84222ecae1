package controller

import (
	"errors"
	"net/http"

	"pos/src/providers/application/request"
	"pos/src/providers/application/usecase"
	"pos/src/providers/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProviderController maneja las peticiones HTTP de proveedores
type ProviderController struct {
	listProvidersUC  *usecase.ListProvidersUseCase
	saveProviderUC   *usecase.SaveProviderUseCase
	deleteProviderUC *usecase.DeleteProviderUseCase
}

// NewProviderController crea una nueva instancia del controlador
func NewProviderController(
	listProvidersUC *usecase.ListProvidersUseCase,
	saveProviderUC *usecase.SaveProviderUseCase,
	deleteProviderUC *usecase.DeleteProviderUseCase,
) *ProviderController {
	return &ProviderController{
		listProvidersUC:  listProvidersUC,
		saveProviderUC:   saveProviderUC,
		deleteProviderUC: deleteProviderUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProviderController) RegisterRoutes(router *gin.RouterGroup) {
	providers := router.Group("/providers")
	{
		providers.GET("", c.ListProviders)
		providers.POST("", c.CreateProvider)
		providers.PUT("/:nit", c.UpdateProvider)
		providers.DELETE("/:nit", c.DeleteProvider)
	}
}

// ListProviders lista los proveedores, con ?search= opcional
func (c *ProviderController) ListProviders(ctx *gin.Context) {
	providers, err := c.listProvidersUC.Execute(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		respondProviderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"providers":   providers,
		"total_count": len(providers),
	})
}

// CreateProvider da de alta un proveedor
func (c *ProviderController) CreateProvider(ctx *gin.Context) {
	var req request.SaveProviderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := c.saveProviderUC.Execute(ctx.Request.Context(), true, &req)
	if err != nil {
		respondProviderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}

// UpdateProvider actualiza un proveedor existente; el NIT del path manda
func (c *ProviderController) UpdateProvider(ctx *gin.Context) {
	var req request.SaveProviderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.NIT = ctx.Param("nit")

	message, err := c.saveProviderUC.Execute(ctx.Request.Context(), false, &req)
	if err != nil {
		respondProviderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteProvider elimina un proveedor por su NIT
func (c *ProviderController) DeleteProvider(ctx *gin.Context) {
	message, err := c.deleteProviderUC.Execute(ctx.Request.Context(), ctx.Param("nit"))
	if err != nil {
		respondProviderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// respondProviderError traduce los errores del módulo a códigos HTTP
func respondProviderError(ctx *gin.Context, err error) {
	var rejected *remote.RejectedError
	var connection *remote.ConnectionError

	switch {
	case errors.Is(err, entity.ErrProviderNITRequired), errors.Is(err, entity.ErrProviderNameRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected provider error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
