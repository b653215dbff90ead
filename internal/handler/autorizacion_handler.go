package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/middleware"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
	"github.com/DarkIsCool10/Glitter-class-back/internal/validator"
)

// AutorizacionHandler handles authentication endpoints.
type AutorizacionHandler struct {
	authService *service.AuthService
	log         zerolog.Logger
}

// NewAutorizacionHandler creates a new AutorizacionHandler.
func NewAutorizacionHandler(authService *service.AuthService, log zerolog.Logger) *AutorizacionHandler {
	return &AutorizacionHandler{
		authService: authService,
		log:         log.With().Str("component", "autorizacion_handler").Logger(),
	}
}

// Login godoc
// POST /api/autorizacion/login
// Validates email + password and returns user identity plus a JWT.
// Unknown email and wrong password produce the same failure.
func (h *AutorizacionHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.Fail(c, http.StatusUnauthorized, response.ErrCredencialesInvalidas)
			return
		}
		h.log.Error().Err(err).Str("correo", req.Correo).Msg("fallo de login")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Inicio de sesión exitoso.", result)
}

// Logout godoc
// POST /api/autorizacion/logout
// Drops the caller's active session.
func (h *AutorizacionHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequerido)
		return
	}

	if err := h.authService.CerrarSesion(c.Request.Context(), claims.IDUsuario); err != nil {
		h.log.Error().Err(err).Int64("id_usuario", claims.IDUsuario).Msg("fallo al cerrar sesión")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Sesión cerrada.", gin.H{})
}
