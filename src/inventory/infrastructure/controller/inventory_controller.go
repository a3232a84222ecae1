package controller

import (
	"errors"
	"net/http"

	"pos/src/inventory/application/request"
	"pos/src/inventory/application/usecase"
	"pos/src/inventory/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InventoryController maneja las peticiones HTTP del inventario
type InventoryController struct {
	listProductsUC  *usecase.ListProductsUseCase
	saveProductUC   *usecase.SaveProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
}

// NewInventoryController crea una nueva instancia del controlador
func NewInventoryController(
	listProductsUC *usecase.ListProductsUseCase,
	saveProductUC *usecase.SaveProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *InventoryController {
	return &InventoryController{
		listProductsUC:  listProductsUC,
		saveProductUC:   saveProductUC,
		deleteProductUC: deleteProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *InventoryController) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", c.ListProducts)
		inventory.POST("/products", c.CreateProduct)
		inventory.PUT("/products/:product_id", c.UpdateProduct)
		inventory.DELETE("/products/:product_id", c.DeleteProduct)
	}
}

// ListProducts lista el inventario, con ?search= opcional por nombre
func (c *InventoryController) ListProducts(ctx *gin.Context) {
	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		respondInventoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateProduct da de alta un producto en el inventario remoto
func (c *InventoryController) CreateProduct(ctx *gin.Context) {
	var req request.SaveProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := c.saveProductUC.Execute(ctx.Request.Context(), "", &req)
	if err != nil {
		respondInventoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}

// UpdateProduct actualiza un producto existente
func (c *InventoryController) UpdateProduct(ctx *gin.Context) {
	var req request.SaveProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := c.saveProductUC.Execute(ctx.Request.Context(), ctx.Param("product_id"), &req)
	if err != nil {
		respondInventoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteProduct elimina un producto del inventario remoto
func (c *InventoryController) DeleteProduct(ctx *gin.Context) {
	message, err := c.deleteProductUC.Execute(ctx.Request.Context(), ctx.Param("product_id"))
	if err != nil {
		respondInventoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// respondInventoryError traduce los errores del módulo a códigos HTTP
func respondInventoryError(ctx *gin.Context, err error) {
	var rejected *remote.RejectedError
	var connection *remote.ConnectionError

	switch {
	case errors.Is(err, entity.ErrProductNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidCost),
		errors.Is(err, entity.ErrInvalidTaxRate),
		errors.Is(err, entity.ErrInvalidStock),
		errors.Is(err, entity.ErrProductIDRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected inventory error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
