package service

import (
	"context"
	"fmt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// UsuarioService handles the user directory reads.
type UsuarioService struct {
	usuarioRepo *repository.UsuarioRepository
}

// NewUsuarioService creates a new UsuarioService.
func NewUsuarioService(usuarioRepo *repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// ObtenerTodos lists every registered user.
func (s *UsuarioService) ObtenerTodos(ctx context.Context) ([]model.Usuario, error) {
	return s.usuarioRepo.ObtenerTodos(ctx)
}

// ObtenerDetalle returns one user's detail view.
func (s *UsuarioService) ObtenerDetalle(ctx context.Context, idUsuario int64) (*model.UsuarioDetalle, error) {
	detalle, err := s.usuarioRepo.ObtenerDetalle(ctx, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("obtener detalle de usuario: %w", err)
	}
	return detalle, nil
}
