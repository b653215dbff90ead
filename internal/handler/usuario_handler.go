package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
)

// UsuarioHandler handles the user directory endpoints.
type UsuarioHandler struct {
	usuarioService *service.UsuarioService
	log            zerolog.Logger
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(usuarioService *service.UsuarioService, log zerolog.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
		log:            log.With().Str("component", "usuario_handler").Logger(),
	}
}

// ObtenerTodos godoc
// GET /api/usuarios/obtener-usuarios
func (h *UsuarioHandler) ObtenerTodos(c *gin.Context) {
	usuarios, err := h.usuarioService.ObtenerTodos(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fallo al listar usuarios")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Consulta exitosa.", usuarios)
}
