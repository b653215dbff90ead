package repository

import (
	"context"
	"errors"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsuarioRepository handles user data access.
type UsuarioRepository struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{pool: pool}
}

// ObtenerTodos lists every registered user.
func (r *UsuarioRepository) ObtenerTodos(ctx context.Context) ([]model.Usuario, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_usuario, nombre, apellido, correo, id_unidad, id_rol, fecha_registro, activo
		 FROM usuarios
		 ORDER BY apellido, nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := []model.Usuario{}
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.IDUsuario, &u.Nombre, &u.Apellido, &u.Correo,
			&u.IDUnidad, &u.IDRol, &u.FechaRegistro, &u.Activo); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// ObtenerDetalle retrieves the detail view of one user.
func (r *UsuarioRepository) ObtenerDetalle(ctx context.Context, idUsuario int64) (*model.UsuarioDetalle, error) {
	d := &model.UsuarioDetalle{}
	err := r.pool.QueryRow(ctx,
		`SELECT u.id_usuario, u.nombre, u.apellido, u.correo,
			u.id_unidad, ua.nombre,
			u.fecha_registro,
			CASE WHEN u.activo THEN 'ACTIVO' ELSE 'INACTIVO' END,
			u.id_rol
		 FROM usuarios u
		 JOIN unidades_academicas ua ON u.id_unidad = ua.id_unidad
		 WHERE u.id_usuario = $1`,
		idUsuario,
	).Scan(&d.IDUsuario, &d.Nombre, &d.Apellido, &d.Correo,
		&d.IDUnidad, &d.NombreUnidad, &d.FechaRegistro, &d.Estado, &d.IDRol)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ObtenerCredenciales retrieves a user by email, hash included, for the
// login flow. Inactive accounts are treated as unknown.
func (r *UsuarioRepository) ObtenerCredenciales(ctx context.Context, correo string) (*model.Usuario, error) {
	u := &model.Usuario{}
	err := r.pool.QueryRow(ctx,
		`SELECT id_usuario, nombre, apellido, correo, contrasena_hash,
			id_unidad, id_rol, fecha_registro, activo
		 FROM usuarios
		 WHERE correo = $1 AND activo`,
		correo,
	).Scan(&u.IDUsuario, &u.Nombre, &u.Apellido, &u.Correo, &u.ContrasenaHash,
		&u.IDUnidad, &u.IDRol, &u.FechaRegistro, &u.Activo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Crear registers a user with an already hashed password and returns
// the generated id.
func (r *UsuarioRepository) Crear(ctx context.Context, u *model.Usuario) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, apellido, correo, contrasena_hash, id_unidad, id_rol)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id_usuario`,
		u.Nombre, u.Apellido, u.Correo, u.ContrasenaHash, u.IDUnidad, u.IDRol,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
