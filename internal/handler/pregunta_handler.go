package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
	"github.com/DarkIsCool10/Glitter-class-back/internal/validator"
)

// PreguntaHandler handles question bank endpoints.
type PreguntaHandler struct {
	preguntaService *service.PreguntaService
	log             zerolog.Logger
}

// NewPreguntaHandler creates a new PreguntaHandler.
func NewPreguntaHandler(preguntaService *service.PreguntaService, log zerolog.Logger) *PreguntaHandler {
	return &PreguntaHandler{
		preguntaService: preguntaService,
		log:             log.With().Str("component", "pregunta_handler").Logger(),
	}
}

// Crear godoc
// POST /api/pregunta/crear-pregunta
func (h *PreguntaHandler) Crear(c *gin.Context) {
	var req model.CrearPreguntaRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	id, err := h.preguntaService.Crear(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("fallo al crear pregunta")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusCreated, "Pregunta creada.", gin.H{"idPregunta": id})
}

// CrearOpcion godoc
// POST /api/pregunta/crear-opcion/:id
func (h *PreguntaHandler) CrearOpcion(c *gin.Context) {
	idPregunta, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.CrearOpcionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacion, fields)
		return
	}

	creada, err := h.preguntaService.CrearOpcion(c.Request.Context(), idPregunta, &req)
	if err != nil {
		if errors.Is(err, repository.ErrPreguntaNoEncontrada) {
			response.Fail(c, http.StatusNotFound, response.ErrNoEncontrado)
			return
		}
		h.log.Error().Err(err).Int64("id_pregunta", idPregunta).Msg("fallo al crear opción")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}

	response.Success(c, http.StatusCreated, "Opción creada.", creada)
}

// ObtenerTodas godoc
// GET /api/pregunta/obtener-preguntas-opciones
func (h *PreguntaHandler) ObtenerTodas(c *gin.Context) {
	h.listar(c, func() ([]model.PreguntaConOpciones, error) {
		return h.preguntaService.ObtenerTodas(c.Request.Context())
	})
}

// ListarPorDocente godoc
// GET /api/pregunta/obtener-preguntas-docente/:id
func (h *PreguntaHandler) ListarPorDocente(c *gin.Context) {
	idDocente, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.listar(c, func() ([]model.PreguntaConOpciones, error) {
		return h.preguntaService.ListarPorDocente(c.Request.Context(), idDocente)
	})
}

// ListarPorTema godoc
// GET /api/pregunta/obtener-preguntas-tema/:id
func (h *PreguntaHandler) ListarPorTema(c *gin.Context) {
	idTema, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.listar(c, func() ([]model.PreguntaConOpciones, error) {
		return h.preguntaService.ListarPorTema(c.Request.Context(), idTema)
	})
}

// ListarPorDocenteYTema godoc
// GET /api/pregunta/obtener-preguntas-docente-tema/:idDocente/:idTema
func (h *PreguntaHandler) ListarPorDocenteYTema(c *gin.Context) {
	idDocente, ok := paramID(c, "idDocente")
	if !ok {
		return
	}
	idTema, ok := paramID(c, "idTema")
	if !ok {
		return
	}
	h.listar(c, func() ([]model.PreguntaConOpciones, error) {
		return h.preguntaService.ListarPorDocenteYTema(c.Request.Context(), idDocente, idTema)
	})
}

// ListarPublicas godoc
// GET /api/pregunta/obtener-preguntas-publicas
func (h *PreguntaHandler) ListarPublicas(c *gin.Context) {
	h.listar(c, func() ([]model.PreguntaConOpciones, error) {
		return h.preguntaService.ListarPublicas(c.Request.Context())
	})
}

func (h *PreguntaHandler) listar(c *gin.Context, consulta func() ([]model.PreguntaConOpciones, error)) {
	preguntas, err := consulta()
	if err != nil {
		h.log.Error().Err(err).Msg("fallo al listar preguntas")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
		return
	}
	response.Success(c, http.StatusOK, "Consulta exitosa.", preguntas)
}

// paramID parses an int64 path parameter, failing the request with a
// 400 when it is not a number.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return 0, false
	}
	return id, true
}
