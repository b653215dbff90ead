package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Autenticación ─────────────────────────────────────────────────
	ErrCredencialesInvalidas ErrCode = "CREDENCIALES_INVALIDAS"
	ErrSesionActiva          ErrCode = "SESION_ACTIVA"
	ErrTokenRequerido        ErrCode = "TOKEN_REQUERIDO"
	ErrTokenInvalido         ErrCode = "TOKEN_INVALIDO"

	// ─── Autorización ──────────────────────────────────────────────────
	ErrProhibido      ErrCode = "PROHIBIDO"
	ErrSoloDocente    ErrCode = "SOLO_DOCENTE"
	ErrSoloEstudiante ErrCode = "SOLO_ESTUDIANTE"

	// ─── Validación ────────────────────────────────────────────────────
	ErrValidacion ErrCode = "ERROR_VALIDACION"
	ErrIDInvalido ErrCode = "ID_INVALIDO"

	// ─── Recursos ──────────────────────────────────────────────────────
	ErrNoEncontrado ErrCode = "NO_ENCONTRADO"
	ErrConflicto    ErrCode = "CONFLICTO"

	// ─── Exámenes e intentos ───────────────────────────────────────────
	ErrIntentoDuplicado   ErrCode = "INTENTO_DUPLICADO"
	ErrIntentoNoGenerado  ErrCode = "INTENTO_NO_GENERADO"
	ErrTemaNoCoincide     ErrCode = "TEMA_NO_COINCIDE"
	ErrExamenSinPreguntas ErrCode = "EXAMEN_SIN_PREGUNTAS"

	// ─── Limitación de peticiones ──────────────────────────────────────
	ErrDemasiadasPeticiones ErrCode = "DEMASIADAS_PETICIONES"

	// ─── Servidor ──────────────────────────────────────────────────────
	ErrInterno ErrCode = "ERROR_INTERNO"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Autenticación ─────────────────────────────────────────────────
	case ErrCredencialesInvalidas:
		return "Correo o contraseña incorrectos."
	case ErrSesionActiva:
		return "Ya existe una sesión activa en otro dispositivo."
	case ErrTokenRequerido:
		return "Se requiere un token de autenticación."
	case ErrTokenInvalido:
		return "El token de autenticación no es válido."

	// ─── Autorización ──────────────────────────────────────────────────
	case ErrProhibido:
		return "No tiene permisos para acceder a este recurso."
	case ErrSoloDocente:
		return "Este recurso está reservado para docentes."
	case ErrSoloEstudiante:
		return "Este recurso está reservado para estudiantes."

	// ─── Validación ────────────────────────────────────────────────────
	case ErrValidacion:
		return "La validación falló. Revise los datos enviados."
	case ErrIDInvalido:
		return "El formato del identificador no es válido."

	// ─── Recursos ──────────────────────────────────────────────────────
	case ErrNoEncontrado:
		return "Recurso no encontrado."
	case ErrConflicto:
		return "El recurso ya existe."

	// ─── Exámenes e intentos ───────────────────────────────────────────
	case ErrIntentoDuplicado:
		return "Ya existe un intento de este examen para el estudiante."
	case ErrIntentoNoGenerado:
		return "No se pudo generar el examen para el estudiante."
	case ErrTemaNoCoincide:
		return "La unidad o el tema de la pregunta no coincide con el del examen."
	case ErrExamenSinPreguntas:
		return "El examen debe incluir al menos una pregunta."

	// ─── Limitación de peticiones ──────────────────────────────────────
	case ErrDemasiadasPeticiones:
		return "Demasiadas peticiones. Intente de nuevo más tarde."

	// ─── Servidor ──────────────────────────────────────────────────────
	case ErrInterno:
		return "Ocurrió un error interno del servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
