package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/DarkIsCool10/Glitter-class-back/internal/middleware"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
)

const estudiantePrueba int64 = 100

type storePrueba struct {
	generados map[[2]int64]int64
	duenos    map[int64]int64
}

func (f *storePrueba) Generar(_ context.Context, idExamen, idEstudiante int64) (*model.IntentoGeneradoResponse, error) {
	clave := [2]int64{idExamen, idEstudiante}
	if _, existe := f.generados[clave]; existe {
		return nil, repository.ErrIntentoDuplicado
	}
	id := int64(len(f.generados) + 1)
	f.generados[clave] = id
	f.duenos[id] = idEstudiante
	return &model.IntentoGeneradoResponse{
		IDIntento: id, IDExamen: idExamen, IDEstudiante: idEstudiante,
	}, nil
}

func (f *storePrueba) ObtenerPreguntas(_ context.Context, idExamen, idEstudiante int64) ([]model.PreguntaEstudiante, error) {
	if _, existe := f.generados[[2]int64{idExamen, idEstudiante}]; !existe {
		return nil, repository.ErrIntentoNoEncontrado
	}
	return []model.PreguntaEstudiante{
		{IDPregunta: 1, Enunciado: "enunciado", Opciones: []model.OpcionEstudiante{}},
	}, nil
}

func (f *storePrueba) RegistrarRespuesta(_ context.Context, idIntento, idPregunta, idOpcion, idEstudiante int64, _ *int) (*model.RespuestaEstudiante, error) {
	if f.duenos[idIntento] != idEstudiante {
		return nil, repository.ErrRespuestaNoRegistrada
	}
	return &model.RespuestaEstudiante{
		IDIntento: idIntento, IDPregunta: idPregunta, IDOpcion: &idOpcion,
	}, nil
}

func (f *storePrueba) Finalizar(_ context.Context, idIntento, idEstudiante int64) (*model.Intento, error) {
	if f.duenos[idIntento] != idEstudiante {
		return nil, repository.ErrIntentoNoEncontrado
	}
	nota := 4.5
	return &model.Intento{
		IDIntento: idIntento, Estado: model.IntentoFinalizado, Calificacion: &nota,
	}, nil
}

func routerPrueba() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewIntentoHandler(
		service.NewIntentoService(&storePrueba{
			generados: map[[2]int64]int64{},
			duenos:    map[int64]int64{},
		}),
		zerolog.Nop(),
	)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyClaims, &service.Claims{
			IDUsuario: estudiantePrueba,
			IDRol:     model.RolEstudiante,
		})
	})
	r.POST("/api/examen/generar-examen-estudiante/:idExamen/:idEstudiante", h.Generar)
	r.GET("/api/examen/obtener-examen-estudiante/:idExamen/:idEstudiante", h.ObtenerPreguntas)
	r.POST("/api/examen/registrar-respuesta-estudiante/:idIntento/:idPregunta/:idOpcion", h.RegistrarRespuesta)
	r.POST("/api/examen/finalizar-intento-obtener-calificacion/:idIntento", h.Finalizar)
	return r
}

func hacer(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, response.Mensaje) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Mensaje
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("respuesta no es el sobre esperado: %v: %s", err, w.Body.String())
	}
	return w, env
}

func TestGenerarIntentoDuplicado(t *testing.T) {
	r := routerPrueba()

	w, env := hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/100")
	if w.Code != http.StatusCreated {
		t.Fatalf("primer generar: status = %d, want 201", w.Code)
	}
	if env.Error {
		t.Fatalf("primer generar marcado como error: %+v", env)
	}

	w, env = hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/100")
	if w.Code != http.StatusConflict {
		t.Errorf("generar duplicado: status = %d, want 409", w.Code)
	}
	if !env.Error {
		t.Error("generar duplicado no marcado como error")
	}
}

func TestIntentoDeOtroEstudiante(t *testing.T) {
	r := routerPrueba()

	// El token es del estudiante 100; el 999 del path es otro.
	w, env := hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/999")
	if w.Code != http.StatusForbidden {
		t.Errorf("generar ajeno: status = %d, want 403", w.Code)
	}
	if !env.Error {
		t.Error("generar ajeno no marcado como error")
	}

	w, _ = hacer(t, r, http.MethodGet, "/api/examen/obtener-examen-estudiante/1/999")
	if w.Code != http.StatusForbidden {
		t.Errorf("obtener ajeno: status = %d, want 403", w.Code)
	}
}

func TestObtenerPreguntasSinIntento(t *testing.T) {
	r := routerPrueba()

	w, env := hacer(t, r, http.MethodGet, "/api/examen/obtener-examen-estudiante/1/100")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !env.Error {
		t.Error("respuesta sin intento no marcada como error")
	}
}

func TestObtenerPreguntasConIntento(t *testing.T) {
	r := routerPrueba()

	hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/100")
	w, env := hacer(t, r, http.MethodGet, "/api/examen/obtener-examen-estudiante/1/100")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env.Error {
		t.Fatalf("consulta marcada como error: %+v", env)
	}
	if env.Data == nil {
		t.Error("data vacía en la consulta de preguntas")
	}
}

func TestFinalizarIntentoAjeno(t *testing.T) {
	r := routerPrueba()

	hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/100")

	// Un intento que no pertenece al estudiante autenticado se reporta
	// como inexistente.
	w, env := hacer(t, r, http.MethodPost, "/api/examen/finalizar-intento-obtener-calificacion/77")
	if w.Code != http.StatusNotFound {
		t.Errorf("finalizar ajeno: status = %d, want 404", w.Code)
	}
	if !env.Error {
		t.Error("finalizar ajeno no marcado como error")
	}

	w, _ = hacer(t, r, http.MethodPost, "/api/examen/registrar-respuesta-estudiante/77/1/1")
	if w.Code != http.StatusConflict {
		t.Errorf("responder intento ajeno: status = %d, want 409", w.Code)
	}

	w, _ = hacer(t, r, http.MethodPost, "/api/examen/finalizar-intento-obtener-calificacion/1")
	if w.Code != http.StatusOK {
		t.Errorf("finalizar propio: status = %d, want 200", w.Code)
	}
}

func TestRegistrarRespuestaCuerpoChunked(t *testing.T) {
	r := routerPrueba()
	hacer(t, r, http.MethodPost, "/api/examen/generar-examen-estudiante/1/100")

	// Cuerpo con longitud desconocida (transferencia chunked): el
	// tiempo inválido debe rechazarse, no ignorarse.
	req := httptest.NewRequest(http.MethodPost,
		"/api/examen/registrar-respuesta-estudiante/1/1/1",
		strings.NewReader(`{"tiempoEmpleado":-5}`))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestIDInvalidoEnRuta(t *testing.T) {
	r := routerPrueba()

	w, env := hacer(t, r, http.MethodPost, "/api/examen/finalizar-intento-obtener-calificacion/abc")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !env.Error {
		t.Error("id inválido no marcado como error")
	}
}
