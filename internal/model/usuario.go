package model

import "time"

// Rol enumerates the user roles known to the platform.
type Rol int64

const (
	RolDocente    Rol = 1
	RolEstudiante Rol = 2
)

// Usuario represents a platform user (docente or estudiante).
type Usuario struct {
	IDUsuario      int64      `json:"idUsuario"`
	Nombre         string     `json:"nombre"`
	Apellido       string     `json:"apellido"`
	Correo         string     `json:"correo"`
	IDUnidad       int64      `json:"idUnidad"`
	IDRol          Rol        `json:"idRol"`
	FechaRegistro  *time.Time `json:"fechaRegistro,omitempty"`
	Activo         bool       `json:"activo"`
	ContrasenaHash string     `json:"-"`
}

// UsuarioDetalle is the single-user detail view returned by the public API.
type UsuarioDetalle struct {
	IDUsuario     int64     `json:"idUsuario"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Correo        string    `json:"correo"`
	IDUnidad      int64     `json:"idUnidad"`
	NombreUnidad  string    `json:"nombreUnidad"`
	FechaRegistro time.Time `json:"fechaRegistro"`
	Estado        string    `json:"estado"`
	IDRol         Rol       `json:"idRol"`
}

// LoginRequest is the credential payload for /api/autorizacion/login.
type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email,max=255"`
	Contrasena string `json:"contrasena" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after a successful credential check.
type LoginResponse struct {
	IDUsuario int64  `json:"idUsuario"`
	IDRol     Rol    `json:"idRol"`
	Correo    string `json:"correo"`
	Token     string `json:"token"`
}
