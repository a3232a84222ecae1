package controller

import (
	"errors"
	"net/http"

	"pos/src/invoices/application/usecase"
	domainCriteria "pos/src/shared/domain/criteria"
	"pos/src/shared/domain/remote"
	infraCriteria "pos/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// allowedInvoiceFields son los campos filtrables y ordenables del listado
var allowedInvoiceFields = []string{"No", "Fecha", "Nombre_Cl", "Medio_Pago", "Total"}

// InvoiceController maneja las peticiones HTTP del historial de facturas
type InvoiceController struct {
	listInvoicesUC *usecase.ListInvoicesUseCase
	helper         *infraCriteria.ControllerHelper
}

// NewInvoiceController crea una nueva instancia del controlador
func NewInvoiceController(listInvoicesUC *usecase.ListInvoicesUseCase) *InvoiceController {
	return &InvoiceController{
		listInvoicesUC: listInvoicesUC,
		helper:         infraCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *InvoiceController) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices")
	{
		invoices.GET("", c.ListInvoices)
	}
}

// ListInvoices lista las facturas con búsqueda, filtros, orden y paginación.
// Query params: search, medio_pago, fecha, order_by, order_type, limit, offset.
func (c *InvoiceController) ListInvoices(ctx *gin.Context) {
	builder := c.helper.BuildCriteriaFromQuery(ctx)
	if medioPago := ctx.Query("medio_pago"); medioPago != "" {
		builder.WithFilter("Medio_Pago", domainCriteria.OpEqual, medioPago)
	}
	if fecha := ctx.Query("fecha"); fecha != "" {
		builder.WithFilter("Fecha", domainCriteria.OpLike, fecha)
	}
	criteria := c.helper.ValidateAndSanitizeCriteria(builder.Build(), allowedInvoiceFields)

	result, err := c.listInvoicesUC.Execute(ctx.Request.Context(), ctx.Query("search"), criteria)
	if err != nil {
		respondInvoiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// respondInvoiceError traduce los errores del módulo a códigos HTTP
func respondInvoiceError(ctx *gin.Context, err error) {
	var rejected *remote.RejectedError
	var connection *remote.ConnectionError

	switch {
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected invoice error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
