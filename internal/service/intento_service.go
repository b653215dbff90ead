package service

import (
	"context"
	"fmt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
)

// IntentoStore is the storage surface the attempt engine needs. The
// pgx-backed repository satisfies it in production. Write operations
// carry the acting student's id so an attempt can only be touched by
// its owner.
type IntentoStore interface {
	Generar(ctx context.Context, idExamen, idEstudiante int64) (*model.IntentoGeneradoResponse, error)
	ObtenerPreguntas(ctx context.Context, idExamen, idEstudiante int64) ([]model.PreguntaEstudiante, error)
	RegistrarRespuesta(ctx context.Context, idIntento, idPregunta, idOpcion, idEstudiante int64, tiempoEmpleado *int) (*model.RespuestaEstudiante, error)
	Finalizar(ctx context.Context, idIntento, idEstudiante int64) (*model.Intento, error)
}

// IntentoService drives the attempt lifecycle: generate, serve
// questions, record answers, finalize with a grade.
type IntentoService struct {
	store IntentoStore
}

// NewIntentoService creates a new IntentoService.
func NewIntentoService(store IntentoStore) *IntentoService {
	return &IntentoService{store: store}
}

// Generar creates the attempt and its question snapshot. Duplicate and
// empty-pool conditions surface as repository sentinel errors for the
// handler to map.
func (s *IntentoService) Generar(ctx context.Context, idExamen, idEstudiante int64) (*model.IntentoGeneradoResponse, error) {
	intento, err := s.store.Generar(ctx, idExamen, idEstudiante)
	if err != nil {
		return nil, fmt.Errorf("generar intento: %w", err)
	}
	return intento, nil
}

// ObtenerPreguntas returns the snapshotted questions of the attempt a
// student holds on an exam.
func (s *IntentoService) ObtenerPreguntas(ctx context.Context, idExamen, idEstudiante int64) ([]model.PreguntaEstudiante, error) {
	preguntas, err := s.store.ObtenerPreguntas(ctx, idExamen, idEstudiante)
	if err != nil {
		return nil, fmt.Errorf("obtener preguntas del intento: %w", err)
	}
	return preguntas, nil
}

// RegistrarRespuesta stores one selected option on the student's own
// attempt. Re-answering the same question overwrites the previous
// selection while the attempt is open.
func (s *IntentoService) RegistrarRespuesta(ctx context.Context, idIntento, idPregunta, idOpcion, idEstudiante int64, tiempoEmpleado *int) (*model.RespuestaEstudiante, error) {
	resp, err := s.store.RegistrarRespuesta(ctx, idIntento, idPregunta, idOpcion, idEstudiante, tiempoEmpleado)
	if err != nil {
		return nil, fmt.Errorf("registrar respuesta: %w", err)
	}
	return resp, nil
}

// Finalizar closes the student's own attempt and returns it with its
// grade. Calling it again returns the same stored result.
func (s *IntentoService) Finalizar(ctx context.Context, idIntento, idEstudiante int64) (*model.Intento, error) {
	intento, err := s.store.Finalizar(ctx, idIntento, idEstudiante)
	if err != nil {
		return nil, fmt.Errorf("finalizar intento: %w", err)
	}
	return intento, nil
}
