package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// ErrCantidadInvalida rejects count updates that would show more
// questions than the exam holds.
var ErrCantidadInvalida = errors.New("preguntas a mostrar supera el total de preguntas")

// ExamenService handles exam business logic.
type ExamenService struct {
	examenRepo *repository.ExamenRepository
}

// NewExamenService creates a new ExamenService.
func NewExamenService(examenRepo *repository.ExamenRepository) *ExamenService {
	return &ExamenService{examenRepo: examenRepo}
}

// Crear registers a new exam.
func (s *ExamenService) Crear(ctx context.Context, req *model.CrearExamenRequest) (*model.ExamenCreado, error) {
	creado, err := s.examenRepo.Crear(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("crear examen: %w", err)
	}
	return creado, nil
}

// ListarPorDocente lists a docente's exams.
func (s *ExamenService) ListarPorDocente(ctx context.Context, idDocente int64) ([]model.ObtenerExamen, error) {
	return s.examenRepo.ListarPorDocente(ctx, idDocente)
}

// ListarPorGrupo lists a group's exams.
func (s *ExamenService) ListarPorGrupo(ctx context.Context, idGrupo int64) ([]model.ObtenerExamen, error) {
	return s.examenRepo.ListarPorGrupo(ctx, idGrupo)
}

// Editar updates the editable subset of an exam.
func (s *ExamenService) Editar(ctx context.Context, req *model.EditarExamenRequest) error {
	if err := s.examenRepo.Editar(ctx, req); err != nil {
		return fmt.Errorf("editar examen: %w", err)
	}
	return nil
}

// Eliminar deletes an exam along with its pool links and attempts.
func (s *ExamenService) Eliminar(ctx context.Context, idExamen int64) error {
	if err := s.examenRepo.Eliminar(ctx, idExamen); err != nil {
		return fmt.Errorf("eliminar examen: %w", err)
	}
	return nil
}

// AgregarPregunta attaches a question to the exam's pool with its
// weight in the exam grade.
func (s *ExamenService) AgregarPregunta(ctx context.Context, idExamen, idPregunta int64, porcentaje float64) error {
	if err := s.examenRepo.AgregarPregunta(ctx, idExamen, idPregunta, porcentaje); err != nil {
		return fmt.Errorf("agregar pregunta a examen: %w", err)
	}
	return nil
}

// ActualizarCantidadPreguntas persists the pool size and how many of
// those questions each attempt shows. Checked here, before the CHECK
// constraint would reject it with an opaque error.
func (s *ExamenService) ActualizarCantidadPreguntas(ctx context.Context, req *model.CantidadPreguntasRequest) (*model.CantidadPreguntasActualizada, error) {
	if req.PreguntasMostrar > req.TotalPreguntas {
		return nil, ErrCantidadInvalida
	}
	actualizada, err := s.examenRepo.ActualizarCantidadPreguntas(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("actualizar cantidad de preguntas: %w", err)
	}
	return actualizada, nil
}
