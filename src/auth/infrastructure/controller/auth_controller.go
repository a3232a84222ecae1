package controller

import (
	"errors"
	"net/http"

	"pos/src/auth/application/request"
	"pos/src/auth/application/usecase"
	"pos/src/auth/domain/entity"
	"pos/src/shared/domain/remote"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthController maneja login y registro de vendedores. Sus rutas son
// abiertas: el resto del servicio exige el token que emite el login.
type AuthController struct {
	loginUC    *usecase.LoginUseCase
	registerUC *usecase.RegisterUseCase
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(loginUC *usecase.LoginUseCase, registerUC *usecase.RegisterUseCase) *AuthController {
	return &AuthController{
		loginUC:    loginUC,
		registerUC: registerUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
		auth.POST("/register", c.Register)
	}
}

// Login valida credenciales y emite el token de sesión
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.loginUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondAuthError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Register da de alta un vendedor
func (c *AuthController) Register(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := c.registerUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		respondAuthError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": message})
}

// respondAuthError traduce los errores del módulo a códigos HTTP
func respondAuthError(ctx *gin.Context, err error) {
	var rejected *remote.RejectedError
	var connection *remote.ConnectionError

	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &rejected):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejected.Message})
	case errors.As(err, &connection):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": connection.Error()})
	default:
		logrus.WithError(err).Error("Unexpected auth error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
