package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DarkIsCool10/Glitter-class-back/internal/config"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

type usuariosFalsos struct {
	porCorreo map[string]*model.Usuario
}

func (f *usuariosFalsos) ObtenerCredenciales(_ context.Context, correo string) (*model.Usuario, error) {
	u, ok := f.porCorreo[correo]
	if !ok {
		return nil, repository.ErrUsuarioNoEncontrado
	}
	return u, nil
}

func configPrueba() *config.Config {
	return &config.Config{
		JWTSecret:  "secreto-de-prueba",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestHashYCheckPassword(t *testing.T) {
	s := NewAuthService(configPrueba(), nil, nil)

	hash, err := s.HashPassword("clave123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "clave123" {
		t.Fatal("el hash no debe ser la contraseña en claro")
	}

	if err := s.CheckPassword(hash, "clave123"); err != nil {
		t.Errorf("CheckPassword con la clave correcta: %v", err)
	}
	if err := s.CheckPassword(hash, "otra"); !errors.Is(err, ErrCredencialesInvalidas) {
		t.Errorf("CheckPassword con clave incorrecta = %v, want ErrCredencialesInvalidas", err)
	}
}

func TestLoginFallosIndistinguibles(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	usuarios := &usuariosFalsos{porCorreo: map[string]*model.Usuario{
		"docente@uni.edu": {
			IDUsuario:      1,
			Correo:         "docente@uni.edu",
			ContrasenaHash: string(hash),
			IDRol:          model.RolDocente,
		},
	}}
	s := NewAuthService(configPrueba(), nil, usuarios)
	ctx := context.Background()

	_, errDesconocido := s.Login(ctx, &model.LoginRequest{
		Correo: "nadie@uni.edu", Contrasena: "correcta",
	})
	_, errClaveMala := s.Login(ctx, &model.LoginRequest{
		Correo: "docente@uni.edu", Contrasena: "incorrecta",
	})

	if !errors.Is(errDesconocido, ErrCredencialesInvalidas) {
		t.Errorf("correo desconocido = %v, want ErrCredencialesInvalidas", errDesconocido)
	}
	if !errors.Is(errClaveMala, ErrCredencialesInvalidas) {
		t.Errorf("clave incorrecta = %v, want ErrCredencialesInvalidas", errClaveMala)
	}
	if errDesconocido.Error() != errClaveMala.Error() {
		t.Errorf("los fallos deben ser indistinguibles: %q vs %q",
			errDesconocido.Error(), errClaveMala.Error())
	}
}

func TestValidateToken(t *testing.T) {
	cfg := configPrueba()
	s := NewAuthService(cfg, nil, nil)

	firmar := func(secret string, exp time.Time) string {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti-prueba",
				Subject:   "42",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
			IDUsuario: 42,
			IDRol:     model.RolEstudiante,
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("firmar: %v", err)
		}
		return signed
	}

	t.Run("token valido", func(t *testing.T) {
		claims, err := s.ValidateToken(firmar(cfg.JWTSecret, time.Now().Add(time.Hour)))
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if claims.IDUsuario != 42 || claims.IDRol != model.RolEstudiante {
			t.Errorf("claims = %+v", claims)
		}
	})

	t.Run("firma ajena", func(t *testing.T) {
		if _, err := s.ValidateToken(firmar("otro-secreto", time.Now().Add(time.Hour))); err == nil {
			t.Error("token con otra firma aceptado")
		}
	})

	t.Run("token expirado", func(t *testing.T) {
		if _, err := s.ValidateToken(firmar(cfg.JWTSecret, time.Now().Add(-time.Hour))); err == nil {
			t.Error("token expirado aceptado")
		}
	})
}
