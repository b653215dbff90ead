package service

import (
	"context"
	"fmt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// PreguntaService handles question bank business logic.
type PreguntaService struct {
	preguntaRepo *repository.PreguntaRepository
}

// NewPreguntaService creates a new PreguntaService.
func NewPreguntaService(preguntaRepo *repository.PreguntaRepository) *PreguntaService {
	return &PreguntaService{preguntaRepo: preguntaRepo}
}

// Crear registers a new question and returns its id.
func (s *PreguntaService) Crear(ctx context.Context, req *model.CrearPreguntaRequest) (int64, error) {
	id, err := s.preguntaRepo.Crear(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("crear pregunta: %w", err)
	}
	return id, nil
}

// CrearOpcion attaches an option to a question. The display order is
// assigned server-side, one past the current maximum.
func (s *PreguntaService) CrearOpcion(ctx context.Context, idPregunta int64, req *model.CrearOpcionRequest) (*model.OpcionCreada, error) {
	creada, err := s.preguntaRepo.CrearOpcion(ctx, idPregunta, req)
	if err != nil {
		return nil, fmt.Errorf("crear opción: %w", err)
	}
	return creada, nil
}

// ObtenerTodas lists every question with its options.
func (s *PreguntaService) ObtenerTodas(ctx context.Context) ([]model.PreguntaConOpciones, error) {
	return s.preguntaRepo.ObtenerTodasConOpciones(ctx)
}

// ListarPorDocente lists the questions authored by one docente.
func (s *PreguntaService) ListarPorDocente(ctx context.Context, idDocente int64) ([]model.PreguntaConOpciones, error) {
	return s.preguntaRepo.ListarPorDocente(ctx, idDocente)
}

// ListarPorTema lists the questions under one topic.
func (s *PreguntaService) ListarPorTema(ctx context.Context, idTema int64) ([]model.PreguntaConOpciones, error) {
	return s.preguntaRepo.ListarPorTema(ctx, idTema)
}

// ListarPorDocenteYTema lists one docente's questions under one topic.
func (s *PreguntaService) ListarPorDocenteYTema(ctx context.Context, idDocente, idTema int64) ([]model.PreguntaConOpciones, error) {
	return s.preguntaRepo.ListarPorDocenteYTema(ctx, idDocente, idTema)
}

// ListarPublicas lists the questions shared with public visibility.
func (s *PreguntaService) ListarPublicas(ctx context.Context) ([]model.PreguntaConOpciones, error) {
	return s.preguntaRepo.ListarPublicas(ctx)
}
