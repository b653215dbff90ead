package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
)

// PublicoHandler handles the parametric lookup endpoints.
type PublicoHandler struct {
	publicoService *service.PublicoService
	usuarioService *service.UsuarioService
	log            zerolog.Logger
}

// NewPublicoHandler creates a new PublicoHandler.
func NewPublicoHandler(publicoService *service.PublicoService, usuarioService *service.UsuarioService, log zerolog.Logger) *PublicoHandler {
	return &PublicoHandler{
		publicoService: publicoService,
		usuarioService: usuarioService,
		log:            log.With().Str("component", "publico_handler").Logger(),
	}
}

// ObtenerTemas godoc
// GET /api/public/obtener-temas
func (h *PublicoHandler) ObtenerTemas(c *gin.Context) {
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarTemas(c.Request.Context())
	})
}

// ObtenerTemasUnidad godoc
// GET /api/public/obtener-temas-unidad/:id
func (h *PublicoHandler) ObtenerTemasUnidad(c *gin.Context) {
	idUnidad, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarTemasUnidad(c.Request.Context(), idUnidad)
	})
}

// ObtenerDificultades godoc
// GET /api/public/obtener-dificultades
func (h *PublicoHandler) ObtenerDificultades(c *gin.Context) {
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarDificultades(c.Request.Context())
	})
}

// ObtenerTipos godoc
// GET /api/public/obtener-tipos
func (h *PublicoHandler) ObtenerTipos(c *gin.Context) {
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarTiposPregunta(c.Request.Context())
	})
}

// ObtenerVisibilidades godoc
// GET /api/public/obtener-visibilidades
func (h *PublicoHandler) ObtenerVisibilidades(c *gin.Context) {
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarVisibilidades(c.Request.Context())
	})
}

// ObtenerUnidades godoc
// GET /api/public/obtener-unidades
func (h *PublicoHandler) ObtenerUnidades(c *gin.Context) {
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarUnidades(c.Request.Context())
	})
}

// ObtenerUnidadesDocente godoc
// GET /api/public/obtener-unidades-docente/:id
func (h *PublicoHandler) ObtenerUnidadesDocente(c *gin.Context) {
	idDocente, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarUnidadesDocente(c.Request.Context(), idDocente)
	})
}

// ObtenerGruposDocente godoc
// GET /api/public/obtener-grupos-docente/:id
func (h *PublicoHandler) ObtenerGruposDocente(c *gin.Context) {
	idDocente, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarGruposDocente(c.Request.Context(), idDocente)
	})
}

// ObtenerCursosEstudiante godoc
// GET /api/public/obtener-cursos-estudiante/:id
func (h *PublicoHandler) ObtenerCursosEstudiante(c *gin.Context) {
	idEstudiante, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarCursosEstudiante(c.Request.Context(), idEstudiante)
	})
}

// ObtenerCursosDocente godoc
// GET /api/public/obtener-cursos-docente/:id
func (h *PublicoHandler) ObtenerCursosDocente(c *gin.Context) {
	idDocente, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.responder(c, func() (any, error) {
		return h.publicoService.ListarCursosDocente(c.Request.Context(), idDocente)
	})
}

// ObtenerUsuario godoc
// GET /api/public/obtener-usuario/:id
func (h *PublicoHandler) ObtenerUsuario(c *gin.Context) {
	idUsuario, ok := paramID(c, "id")
	if !ok {
		return
	}

	detalle, err := h.usuarioService.ObtenerDetalle(c.Request.Context(), idUsuario)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
			return
		}
		h.log.Error().Err(err).Int64("id_usuario", idUsuario).Msg("fallo al obtener usuario")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Consulta exitosa.", detalle)
}

func (h *PublicoHandler) responder(c *gin.Context, consulta func() (any, error)) {
	data, err := consulta()
	if err != nil {
		h.log.Error().Err(err).Str("ruta", c.FullPath()).Msg("fallo en consulta paramétrica")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}
	response.Success(c, http.StatusOK, "Consulta exitosa.", data)
}
