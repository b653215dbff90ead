package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
	"github.com/DarkIsCool10/Glitter-class-back/internal/validator"
)

// agregarPreguntaRequest carries the optional weight of a pool entry.
type agregarPreguntaRequest struct {
	Porcentaje float64 `json:"porcentaje" binding:"min=0,max=100"`
}

// ExamenHandler handles exam management endpoints.
type ExamenHandler struct {
	examenService *service.ExamenService
	log           zerolog.Logger
}

// NewExamenHandler creates a new ExamenHandler.
func NewExamenHandler(examenService *service.ExamenService, log zerolog.Logger) *ExamenHandler {
	return &ExamenHandler{
		examenService: examenService,
		log:           log.With().Str("component", "examen_handler").Logger(),
	}
}

// Crear godoc
// POST /api/examen/crear-examen
func (h *ExamenHandler) Crear(c *gin.Context) {
	var req model.CrearExamenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	creado, err := h.examenService.Crear(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("fallo al crear examen")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusCreated, "Examen creado.", creado)
}

// ListarPorDocente godoc
// GET /api/examen/listar-examenes-docente/:idDocente
func (h *ExamenHandler) ListarPorDocente(c *gin.Context) {
	idDocente, ok := paramID(c, "idDocente")
	if !ok {
		return
	}

	examenes, err := h.examenService.ListarPorDocente(c.Request.Context(), idDocente)
	if err != nil {
		h.log.Error().Err(err).Int64("id_docente", idDocente).Msg("fallo al listar exámenes")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Consulta exitosa.", examenes)
}

// ListarPorGrupo godoc
// GET /api/examen/listar-examenes-grupo/:idGrupo
func (h *ExamenHandler) ListarPorGrupo(c *gin.Context) {
	idGrupo, ok := paramID(c, "idGrupo")
	if !ok {
		return
	}

	examenes, err := h.examenService.ListarPorGrupo(c.Request.Context(), idGrupo)
	if err != nil {
		h.log.Error().Err(err).Int64("id_grupo", idGrupo).Msg("fallo al listar exámenes")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Consulta exitosa.", examenes)
}

// Editar godoc
// POST /api/examen/editar-examen
func (h *ExamenHandler) Editar(c *gin.Context) {
	var req model.EditarExamenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	if err := h.examenService.Editar(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrExamenNoEncontrado) {
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
			return
		}
		h.log.Error().Err(err).Int64("id_examen", req.IDExamen).Msg("fallo al editar examen")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Examen actualizado.", gin.H{"idExamen": req.IDExamen})
}

// Eliminar godoc
// POST /api/examen/eliminar-examen/:idExamen
func (h *ExamenHandler) Eliminar(c *gin.Context) {
	idExamen, ok := paramID(c, "idExamen")
	if !ok {
		return
	}

	if err := h.examenService.Eliminar(c.Request.Context(), idExamen); err != nil {
		if errors.Is(err, repository.ErrExamenNoEncontrado) {
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
			return
		}
		h.log.Error().Err(err).Int64("id_examen", idExamen).Msg("fallo al eliminar examen")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusOK, "Examen eliminado.", gin.H{"idExamen": idExamen})
}

// AgregarPregunta godoc
// POST /api/examen/agregar-pregunta-examen/:idExamen/:idPregunta
// The optional body sets the question's weight inside the exam.
func (h *ExamenHandler) AgregarPregunta(c *gin.Context) {
	idExamen, ok := paramID(c, "idExamen")
	if !ok {
		return
	}
	idPregunta, ok := paramID(c, "idPregunta")
	if !ok {
		return
	}

	req := agregarPreguntaRequest{}
	if c.Request.ContentLength != 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
			return
		}
	}

	err := h.examenService.AgregarPregunta(c.Request.Context(), idExamen, idPregunta, req.Porcentaje)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, "Pregunta agregada al examen.", gin.H{
			"idExamen":   idExamen,
			"idPregunta": idPregunta,
		})
	case errors.Is(err, repository.ErrExamenNoEncontrado),
		errors.Is(err, repository.ErrPreguntaNoEncontrada):
		response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
	case errors.Is(err, repository.ErrTemaNoCoincide):
		response.Fail(c, http.StatusConflict, response.ErrTemaNoCoincide)
	case errors.Is(err, repository.ErrPreguntaYaAgregada):
		response.Fail(c, http.StatusConflict, response.ErrConflicto)
	default:
		h.log.Error().Err(err).
			Int64("id_examen", idExamen).
			Int64("id_pregunta", idPregunta).
			Msg("fallo al agregar pregunta a examen")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
	}
}

// ActualizarCantidadPreguntas godoc
// POST /api/examen/actualizar-cantidad-preguntas
func (h *ExamenHandler) ActualizarCantidadPreguntas(c *gin.Context) {
	var req model.CantidadPreguntasRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	actualizada, err := h.examenService.ActualizarCantidadPreguntas(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCantidadInvalida):
			response.FailMessage(c, http.StatusBadRequest, service.ErrCantidadInvalida.Error())
		case errors.Is(err, repository.ErrExamenNoEncontrado):
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
		default:
			h.log.Error().Err(err).Int64("id_examen", req.IDExamen).Msg("fallo al actualizar cantidad de preguntas")
			response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		}
		return
	}

	response.Success(c, http.StatusOK, "Cantidad de preguntas actualizada.", actualizada)
}
