package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/DarkIsCool10/Glitter-class-back/internal/config"
	"github.com/DarkIsCool10/Glitter-class-back/internal/database"
	"github.com/DarkIsCool10/Glitter-class-back/internal/logger"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := repository.NewUsuarioRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Registrar nuevo usuario ===")

	fmt.Print("Nombre: ")
	nombre, _ := reader.ReadString('\n')
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		fmt.Println("Error: el nombre es obligatorio")
		return
	}

	fmt.Print("Apellido: ")
	apellido, _ := reader.ReadString('\n')
	apellido = strings.TrimSpace(apellido)
	if apellido == "" {
		fmt.Println("Error: el apellido es obligatorio")
		return
	}

	fmt.Print("Correo: ")
	correo, _ := reader.ReadString('\n')
	correo = strings.TrimSpace(correo)
	if correo == "" {
		fmt.Println("Error: el correo es obligatorio")
		return
	}

	fmt.Print("Contraseña: ")
	byteContrasena, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError al leer la contraseña")
		return
	}
	contrasena := string(byteContrasena)
	fmt.Println()
	if len(contrasena) < 6 {
		fmt.Println("Error: la contraseña debe tener al menos 6 caracteres")
		return
	}

	fmt.Print("ID de unidad académica (1 por defecto): ")
	idUnidad := leerID(reader, 1)

	fmt.Print("ID de rol (1=docente, 2=estudiante; 1 por defecto): ")
	idRol := leerID(reader, int64(model.RolDocente))

	// ─── Logic ─────────────────────────────────────────────────────────
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	usuario := &model.Usuario{
		Nombre:         nombre,
		Apellido:       apellido,
		Correo:         correo,
		ContrasenaHash: string(hash),
		IDUnidad:       idUnidad,
		IDRol:          model.Rol(idRol),
	}

	id, err := usuarioRepo.Crear(ctx, usuario)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nUsuario '%s %s' (%s) creado con ID: %d\n", nombre, apellido, correo, id)
}

func leerID(reader *bufio.Reader, fallback int64) int64 {
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
