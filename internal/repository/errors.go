package repository

import "errors"

// Typed errors at the data-access boundary. The procedure-era sentinel
// integers (1 success, -1 conflict, anything else failure) are replaced
// by these, so raw result codes never leak past this layer.
var (
	ErrIntentoDuplicado      = errors.New("ya existe un intento para el examen y el estudiante")
	ErrIntentoNoEncontrado   = errors.New("intento no encontrado")
	ErrExamenNoEncontrado    = errors.New("examen no encontrado")
	ErrExamenSinPreguntas    = errors.New("el examen no tiene preguntas asociadas")
	ErrPreguntaNoEncontrada  = errors.New("pregunta no encontrada")
	ErrTemaNoCoincide        = errors.New("la unidad o el tema de la pregunta no coincide con el del examen")
	ErrPreguntaYaAgregada    = errors.New("la pregunta ya pertenece al examen")
	ErrRespuestaNoRegistrada = errors.New("no se pudo registrar la respuesta")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
)
