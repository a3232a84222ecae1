package controller

import (
	"errors"
	"net/http"

	"pos/src/checkout/application/request"
	"pos/src/checkout/application/usecase"
	"pos/src/checkout/domain/entity"
	"pos/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CheckoutController maneja las peticiones HTTP del punto de venta
type CheckoutController struct {
	listCatalogUC      *usecase.ListCatalogUseCase
	createSessionUC    *usecase.CreateSessionUseCase
	getCartUC          *usecase.GetCartUseCase
	addItemUC          *usecase.AddItemUseCase
	updateQuantityUC   *usecase.UpdateQuantityUseCase
	removeItemUC       *usecase.RemoveItemUseCase
	setCustomerUC      *usecase.SetCustomerUseCase
	setPaymentMethodUC *usecase.SetPaymentMethodUseCase
	finalizeSaleUC     *usecase.FinalizeSaleUseCase
	discardSessionUC   *usecase.DiscardSessionUseCase
}

// NewCheckoutController crea una nueva instancia del controlador
func NewCheckoutController(
	listCatalogUC *usecase.ListCatalogUseCase,
	createSessionUC *usecase.CreateSessionUseCase,
	getCartUC *usecase.GetCartUseCase,
	addItemUC *usecase.AddItemUseCase,
	updateQuantityUC *usecase.UpdateQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	setCustomerUC *usecase.SetCustomerUseCase,
	setPaymentMethodUC *usecase.SetPaymentMethodUseCase,
	finalizeSaleUC *usecase.FinalizeSaleUseCase,
	discardSessionUC *usecase.DiscardSessionUseCase,
) *CheckoutController {
	return &CheckoutController{
		listCatalogUC:      listCatalogUC,
		createSessionUC:    createSessionUC,
		getCartUC:          getCartUC,
		addItemUC:          addItemUC,
		updateQuantityUC:   updateQuantityUC,
		removeItemUC:       removeItemUC,
		setCustomerUC:      setCustomerUC,
		setPaymentMethodUC: setPaymentMethodUC,
		finalizeSaleUC:     finalizeSaleUC,
		discardSessionUC:   discardSessionUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CheckoutController) RegisterRoutes(router *gin.RouterGroup) {
	checkout := router.Group("/checkout")
	{
		checkout.GET("/catalog", c.ListCatalog)
		checkout.POST("/sessions", c.CreateSession)
		checkout.GET("/sessions/:session_id", c.GetCart)
		checkout.DELETE("/sessions/:session_id", c.DiscardSession)
		checkout.POST("/sessions/:session_id/items", c.AddItem)
		checkout.PATCH("/sessions/:session_id/items/:item_id", c.UpdateQuantity)
		checkout.DELETE("/sessions/:session_id/items/:item_id", c.RemoveItem)
		checkout.PUT("/sessions/:session_id/customer", c.SetCustomer)
		checkout.PUT("/sessions/:session_id/payment-method", c.SetPaymentMethod)
		checkout.POST("/sessions/:session_id/finalize", c.FinalizeSale)
	}
}

// ListCatalog lista los productos vendibles, con ?search= opcional por nombre
func (c *CheckoutController) ListCatalog(ctx *gin.Context) {
	resp, err := c.listCatalogUC.Execute(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateSession abre una sesión de checkout vacía para el vendedor autenticado
func (c *CheckoutController) CreateSession(ctx *gin.Context) {
	sellerNIT := middleware.SellerNIT(ctx)

	resp, err := c.createSessionUC.Execute(ctx.Request.Context(), sellerNIT)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetCart retorna el estado actual del carrito
func (c *CheckoutController) GetCart(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.getCartUC.Execute(ctx.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddItem agrega un producto del catálogo al carrito
func (c *CheckoutController) AddItem(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.addItemUC.Execute(ctx.Request.Context(), sessionID, req.ItemID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuantity aplica un delta a la cantidad de una línea del carrito
func (c *CheckoutController) UpdateQuantity(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateQuantityUC.Execute(ctx.Request.Context(), sessionID, ctx.Param("item_id"), req.Delta)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveItem elimina una línea completa del carrito
func (c *CheckoutController) RemoveItem(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.removeItemUC.Execute(ctx.Request.Context(), sessionID, ctx.Param("item_id"))
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetCustomer activa o desactiva la factura con nombre de la sesión
func (c *CheckoutController) SetCustomer(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.setCustomerUC.Execute(ctx.Request.Context(), sessionID, &req)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SetPaymentMethod cambia el medio de pago de la venta
func (c *CheckoutController) SetPaymentMethod(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.PaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.setPaymentMethodUC.Execute(ctx.Request.Context(), sessionID, req.MedioPago)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FinalizeSale registra la venta contra el API de facturación
func (c *CheckoutController) FinalizeSale(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.finalizeSaleUC.Execute(ctx.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DiscardSession descarta la sesión y su carrito
func (c *CheckoutController) DiscardSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	if err := c.discardSessionUC.Execute(ctx.Request.Context(), sessionID); err != nil {
		respondCheckoutError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// parseSessionID valida el session_id del path
func parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id format"})
		return uuid.Nil, false
	}
	return sessionID, true
}

// respondCheckoutError traduce los errores del dominio a códigos HTTP
func respondCheckoutError(ctx *gin.Context, err error) {
	var rejected *entity.SaleRejectedError
	var connection *entity.ConnectionError

	switch {
	case errors.Is(err, entity.ErrSessionNotFound), errors.Is(err, entity.ErrItemNotInCatalog):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrEmptyCart), errors.Is(err, entity.ErrIncompleteCustomer):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrSaleInProgress):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidPaymentMethod), errors.Is(err, entity.ErrSellerNITRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &rejected):
		// Mensaje del API de facturación tal cual llegó
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected checkout error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
