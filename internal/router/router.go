package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DarkIsCool10/Glitter-class-back/internal/config"
	"github.com/DarkIsCool10/Glitter-class-back/internal/handler"
	"github.com/DarkIsCool10/Glitter-class-back/internal/middleware"
	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Autorizacion *handler.AutorizacionHandler
	Pregunta     *handler.PreguntaHandler
	Examen       *handler.ExamenHandler
	Intento      *handler.IntentoHandler
	Publico      *handler.PublicoHandler
	Usuario      *handler.UsuarioHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", gin.H{"status": "ok"})
	})

	// Rate limiter for login (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Autorización (pública, con límite de peticiones) ──────────────
	autorizacion := router.Group("/api/autorizacion")
	{
		autorizacion.POST("/login", authLimiter.Middleware(), handlers.Autorizacion.Login)
		autorizacion.POST("/logout", middleware.RequireJWT(authService), handlers.Autorizacion.Logout)
	}

	// ─── Consultas paramétricas (públicas) ─────────────────────────────
	publicAPI := router.Group("/api/public")
	{
		publicAPI.GET("/obtener-temas", handlers.Publico.ObtenerTemas)
		publicAPI.GET("/obtener-temas-unidad/:id", handlers.Publico.ObtenerTemasUnidad)
		publicAPI.GET("/obtener-dificultades", handlers.Publico.ObtenerDificultades)
		publicAPI.GET("/obtener-tipos", handlers.Publico.ObtenerTipos)
		publicAPI.GET("/obtener-visibilidades", handlers.Publico.ObtenerVisibilidades)
		publicAPI.GET("/obtener-unidades", handlers.Publico.ObtenerUnidades)
		publicAPI.GET("/obtener-unidades-docente/:id", handlers.Publico.ObtenerUnidadesDocente)
		publicAPI.GET("/obtener-grupos-docente/:id", handlers.Publico.ObtenerGruposDocente)
		publicAPI.GET("/obtener-cursos-estudiante/:id", handlers.Publico.ObtenerCursosEstudiante)
		publicAPI.GET("/obtener-cursos-docente/:id", handlers.Publico.ObtenerCursosDocente)
		publicAPI.GET("/obtener-usuario/:id", handlers.Publico.ObtenerUsuario)
	}

	// ─── Banco de preguntas (solo docente) ─────────────────────────────
	pregunta := router.Group("/api/pregunta")
	pregunta.Use(
		middleware.RequireDocente(authService),
		middleware.CheckSesionUnica(authService),
	)
	{
		pregunta.POST("/crear-pregunta", handlers.Pregunta.Crear)
		pregunta.POST("/crear-opcion/:id", handlers.Pregunta.CrearOpcion)
		pregunta.GET("/obtener-preguntas-opciones", handlers.Pregunta.ObtenerTodas)
		pregunta.GET("/obtener-preguntas-docente/:id", handlers.Pregunta.ListarPorDocente)
		pregunta.GET("/obtener-preguntas-tema/:id", handlers.Pregunta.ListarPorTema)
		pregunta.GET("/obtener-preguntas-docente-tema/:idDocente/:idTema", handlers.Pregunta.ListarPorDocenteYTema)
		pregunta.GET("/obtener-preguntas-publicas", handlers.Pregunta.ListarPublicas)
	}

	// ─── Gestión de exámenes (solo docente) ────────────────────────────
	examen := router.Group("/api/examen")
	examenDocente := examen.Group("")
	examenDocente.Use(
		middleware.RequireDocente(authService),
		middleware.CheckSesionUnica(authService),
	)
	{
		examenDocente.POST("/crear-examen", handlers.Examen.Crear)
		examenDocente.GET("/listar-examenes-docente/:idDocente", handlers.Examen.ListarPorDocente)
		examenDocente.POST("/editar-examen", handlers.Examen.Editar)
		examenDocente.POST("/eliminar-examen/:idExamen", handlers.Examen.Eliminar)
		examenDocente.POST("/agregar-pregunta-examen/:idExamen/:idPregunta", handlers.Examen.AgregarPregunta)
		examenDocente.POST("/actualizar-cantidad-preguntas", handlers.Examen.ActualizarCantidadPreguntas)
	}

	// Visible a cualquier usuario autenticado del grupo.
	examen.GET("/listar-examenes-grupo/:idGrupo",
		middleware.RequireJWT(authService),
		middleware.CheckSesionUnica(authService),
		handlers.Examen.ListarPorGrupo,
	)

	// ─── Intentos de examen (solo estudiante) ──────────────────────────
	intento := examen.Group("")
	intento.Use(
		middleware.RequireEstudiante(authService),
		middleware.CheckSesionUnica(authService),
	)
	{
		intento.POST("/generar-examen-estudiante/:idExamen/:idEstudiante", handlers.Intento.Generar)
		intento.GET("/obtener-examen-estudiante/:idExamen/:idEstudiante", handlers.Intento.ObtenerPreguntas)
		intento.POST("/registrar-respuesta-estudiante/:idIntento/:idPregunta/:idOpcion", handlers.Intento.RegistrarRespuesta)
		intento.POST("/finalizar-intento-obtener-calificacion/:idIntento", handlers.Intento.Finalizar)
	}

	// ─── Directorio de usuarios (autenticado) ──────────────────────────
	usuarios := router.Group("/api/usuarios")
	usuarios.Use(middleware.RequireJWT(authService))
	{
		usuarios.GET("/obtener-usuarios", handlers.Usuario.ObtenerTodos)
	}

	return router
}
