package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/middleware"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
	"github.com/DarkIsCool10/Glitter-class-back/internal/validator"
)

// registrarRespuestaRequest is the optional answer body carrying the
// time the student spent on the question.
type registrarRespuestaRequest struct {
	TiempoEmpleado *int `json:"tiempoEmpleado" binding:"omitempty,min=0"`
}

// IntentoHandler handles the student attempt lifecycle endpoints.
type IntentoHandler struct {
	intentoService *service.IntentoService
	log            zerolog.Logger
}

// NewIntentoHandler creates a new IntentoHandler.
func NewIntentoHandler(intentoService *service.IntentoService, log zerolog.Logger) *IntentoHandler {
	return &IntentoHandler{
		intentoService: intentoService,
		log:            log.With().Str("component", "intento_handler").Logger(),
	}
}

// estudianteAutenticado returns the authenticated user's id from the
// JWT claims, failing the request when they are missing.
func estudianteAutenticado(c *gin.Context) (int64, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequerido)
		return 0, false
	}
	return claims.IDUsuario, true
}

// Generar godoc
// POST /api/examen/generar-examen-estudiante/:idExamen/:idEstudiante
// Creates the student's attempt and snapshots its question set. Only
// the authenticated student may act on their own id. A second call for
// the same pair is rejected; nothing is overwritten.
func (h *IntentoHandler) Generar(c *gin.Context) {
	idExamen, ok := paramID(c, "idExamen")
	if !ok {
		return
	}
	idEstudiante, ok := paramID(c, "idEstudiante")
	if !ok {
		return
	}
	idAutenticado, ok := estudianteAutenticado(c)
	if !ok {
		return
	}
	if idAutenticado != idEstudiante {
		response.Fail(c, http.StatusForbidden, response.ErrProhibido)
		return
	}

	intento, err := h.intentoService.Generar(c.Request.Context(), idExamen, idEstudiante)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, "Intento generado.", intento)
	case errors.Is(err, repository.ErrIntentoDuplicado):
		response.Fail(c, http.StatusConflict, response.ErrIntentoDuplicado)
	case errors.Is(err, repository.ErrExamenNoEncontrado):
		response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
	case errors.Is(err, repository.ErrExamenSinPreguntas):
		response.Fail(c, http.StatusConflict, response.ErrExamenSinPreguntas)
	default:
		h.log.Error().Err(err).
			Int64("id_examen", idExamen).
			Int64("id_estudiante", idEstudiante).
			Msg("fallo al generar intento")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
	}
}

// ObtenerPreguntas godoc
// GET /api/examen/obtener-examen-estudiante/:idExamen/:idEstudiante
// Returns the snapshotted questions of the student's own attempt,
// options included, without partial credit.
func (h *IntentoHandler) ObtenerPreguntas(c *gin.Context) {
	idExamen, ok := paramID(c, "idExamen")
	if !ok {
		return
	}
	idEstudiante, ok := paramID(c, "idEstudiante")
	if !ok {
		return
	}
	idAutenticado, ok := estudianteAutenticado(c)
	if !ok {
		return
	}
	if idAutenticado != idEstudiante {
		response.Fail(c, http.StatusForbidden, response.ErrProhibido)
		return
	}

	preguntas, err := h.intentoService.ObtenerPreguntas(c.Request.Context(), idExamen, idEstudiante)
	if err != nil {
		if errors.Is(err, repository.ErrIntentoNoEncontrado) {
			response.Fail(c, http.StatusNotFound, response.ErrIntentoNoGenerado)
			return
		}
		h.log.Error().Err(err).
			Int64("id_examen", idExamen).
			Int64("id_estudiante", idEstudiante).
			Msg("fallo al obtener preguntas del intento")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Consulta exitosa.", preguntas)
}

// RegistrarRespuesta godoc
// POST /api/examen/registrar-respuesta-estudiante/:idIntento/:idPregunta/:idOpcion
// Stores the selected option on the caller's own attempt; repeating
// the call overwrites the previous selection while the attempt stays
// open.
func (h *IntentoHandler) RegistrarRespuesta(c *gin.Context) {
	idIntento, ok := paramID(c, "idIntento")
	if !ok {
		return
	}
	idPregunta, ok := paramID(c, "idPregunta")
	if !ok {
		return
	}
	idOpcion, ok := paramID(c, "idOpcion")
	if !ok {
		return
	}
	idAutenticado, ok := estudianteAutenticado(c)
	if !ok {
		return
	}

	req := registrarRespuestaRequest{}
	if c.Request.ContentLength != 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
			return
		}
	}

	resp, err := h.intentoService.RegistrarRespuesta(c.Request.Context(), idIntento, idPregunta, idOpcion, idAutenticado, req.TiempoEmpleado)
	if err != nil {
		if errors.Is(err, repository.ErrRespuestaNoRegistrada) {
			response.Fail(c, http.StatusConflict, response.ErrConflicto)
			return
		}
		h.log.Error().Err(err).
			Int64("id_intento", idIntento).
			Int64("id_pregunta", idPregunta).
			Msg("fallo al registrar respuesta")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Respuesta registrada.", resp)
}

// Finalizar godoc
// POST /api/examen/finalizar-intento-obtener-calificacion/:idIntento
// Closes the caller's own attempt and returns it with its grade.
// Re-finalizing returns the stored result, unchanged.
func (h *IntentoHandler) Finalizar(c *gin.Context) {
	idIntento, ok := paramID(c, "idIntento")
	if !ok {
		return
	}
	idAutenticado, ok := estudianteAutenticado(c)
	if !ok {
		return
	}

	intento, err := h.intentoService.Finalizar(c.Request.Context(), idIntento, idAutenticado)
	if err != nil {
		if errors.Is(err, repository.ErrIntentoNoEncontrado) {
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
			return
		}
		h.log.Error().Err(err).Int64("id_intento", idIntento).Msg("fallo al finalizar intento")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Intento finalizado.", intento)
}
