package service

import (
	"context"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// PublicoService serves the parametric lookups. Reads pass straight
// through to storage.
type PublicoService struct {
	publicoRepo *repository.PublicoRepository
}

// NewPublicoService creates a new PublicoService.
func NewPublicoService(publicoRepo *repository.PublicoRepository) *PublicoService {
	return &PublicoService{publicoRepo: publicoRepo}
}

func (s *PublicoService) ListarTemas(ctx context.Context) ([]model.Tema, error) {
	return s.publicoRepo.ListarTemas(ctx)
}

func (s *PublicoService) ListarTemasUnidad(ctx context.Context, idUnidad int64) ([]model.Tema, error) {
	return s.publicoRepo.ListarTemasUnidad(ctx, idUnidad)
}

func (s *PublicoService) ListarDificultades(ctx context.Context) ([]model.Dificultad, error) {
	return s.publicoRepo.ListarDificultades(ctx)
}

func (s *PublicoService) ListarTiposPregunta(ctx context.Context) ([]model.TipoPregunta, error) {
	return s.publicoRepo.ListarTiposPregunta(ctx)
}

func (s *PublicoService) ListarVisibilidades(ctx context.Context) ([]model.Visibilidad, error) {
	return s.publicoRepo.ListarVisibilidades(ctx)
}

func (s *PublicoService) ListarUnidades(ctx context.Context) ([]model.UnidadAcademica, error) {
	return s.publicoRepo.ListarUnidades(ctx)
}

func (s *PublicoService) ListarUnidadesDocente(ctx context.Context, idDocente int64) ([]model.UnidadAcademica, error) {
	return s.publicoRepo.ListarUnidadesDocente(ctx, idDocente)
}

func (s *PublicoService) ListarGruposDocente(ctx context.Context, idDocente int64) ([]model.Grupo, error) {
	return s.publicoRepo.ListarGruposDocente(ctx, idDocente)
}

func (s *PublicoService) ListarCursosEstudiante(ctx context.Context, idEstudiante int64) ([]model.Curso, error) {
	return s.publicoRepo.ListarCursosEstudiante(ctx, idEstudiante)
}

func (s *PublicoService) ListarCursosDocente(ctx context.Context, idDocente int64) ([]model.Curso, error) {
	return s.publicoRepo.ListarCursosDocente(ctx, idDocente)
}
