package controller

import (
	"errors"
	"net/http"

	"pos/src/dashboard/application/usecase"
	"pos/src/shared/domain/remote"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardController maneja las peticiones HTTP del tablero de indicadores
type DashboardController struct {
	getDashboardUC *usecase.GetDashboardUseCase
}

// NewDashboardController crea una nueva instancia del controlador
func NewDashboardController(getDashboardUC *usecase.GetDashboardUseCase) *DashboardController {
	return &DashboardController{getDashboardUC: getDashboardUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", c.GetDashboard)
	}
}

// GetDashboard obtiene los indicadores; ?date=YYYY-MM-DD o ?month=YYYY-MM
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	data, err := c.getDashboardUC.Execute(ctx.Request.Context(), ctx.Query("date"), ctx.Query("month"))
	if err != nil {
		respondDashboardError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// respondDashboardError traduce los errores del módulo a códigos HTTP
func respondDashboardError(ctx *gin.Context, err error) {
	var rejected *remote.RejectedError
	var connection *remote.ConnectionError

	switch {
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected dashboard error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
