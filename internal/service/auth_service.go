package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/config"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// Common auth errors.
var (
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrSesionInvalida        = errors.New("sesión inválida")
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	IDUsuario int64     `json:"id_usuario"`
	IDRol     model.Rol `json:"id_rol"`
}

// UsuarioCredenciales reads login credentials from storage.
type UsuarioCredenciales interface {
	ObtenerCredenciales(ctx context.Context, correo string) (*model.Usuario, error)
}

// AuthService handles authentication, JWT, and session management. A
// new login replaces any previous session of the same user: only the
// most recent token stays valid.
type AuthService struct {
	cfg      *config.Config
	rdb      *redis.Client
	usuarios UsuarioCredenciales
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client, usuarios UsuarioCredenciales) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb, usuarios: usuarios}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrCredencialesInvalidas
	}
	return nil
}

// Login validates credentials and issues a token. An unknown email and
// a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	usuario, err := s.usuarios.ObtenerCredenciales(ctx, req.Correo)
	if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
		return nil, ErrCredencialesInvalidas
	}
	if err != nil {
		return nil, fmt.Errorf("obtener credenciales: %w", err)
	}
	if err := s.CheckPassword(usuario.ContrasenaHash, req.Contrasena); err != nil {
		return nil, err
	}

	token, err := s.GenerarToken(ctx, usuario.IDUsuario, usuario.IDRol)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		IDUsuario: usuario.IDUsuario,
		IDRol:     usuario.IDRol,
		Correo:    usuario.Correo,
		Token:     token,
	}, nil
}

// GenerarToken creates a JWT and registers its jti as the user's only
// active session in Redis, displacing whatever was there.
func (s *AuthService) GenerarToken(ctx context.Context, idUsuario int64, idRol model.Rol) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(idUsuario, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		IDUsuario: idUsuario,
		IDRol:     idRol,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("firmar token: %w", err)
	}

	sesionKey := config.CacheKey.SesionUsuarioKey(idUsuario)
	if err := s.rdb.Set(ctx, sesionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("registrar sesión: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("analizar token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("claims de token inválidos")
	}

	return claims, nil
}

// ValidarSesion checks that the token's jti is still the user's active
// session. A token displaced by a newer login fails here, even if its
// signature and expiry are fine.
func (s *AuthService) ValidarSesion(ctx context.Context, idUsuario int64, jti string) error {
	sesionKey := config.CacheKey.SesionUsuarioKey(idUsuario)
	stored, err := s.rdb.Get(ctx, sesionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSesionInvalida
		}
		return fmt.Errorf("consultar sesión: %w", err)
	}
	if stored != jti {
		return ErrSesionInvalida
	}
	return nil
}

// CerrarSesion removes the user's active session from Redis.
func (s *AuthService) CerrarSesion(ctx context.Context, idUsuario int64) error {
	return s.rdb.Del(ctx, config.CacheKey.SesionUsuarioKey(idUsuario)).Err()
}
