package model

import "time"

// EstadoIntento enumerates the lifecycle states of a student attempt.
// There is no backward transition: GENERADO may accumulate answers and
// then move to FINALIZADO, possibly with no answers recorded at all.
type EstadoIntento string

const (
	IntentoGenerado   EstadoIntento = "GENERADO"
	IntentoFinalizado EstadoIntento = "FINALIZADO"
)

// Intento is one student's instance of taking one exam. The pair
// (IDExamen, IDEstudiante) is unique: a second generation attempt for
// the same pair is rejected, never silently overwritten.
type Intento struct {
	IDIntento    int64         `json:"idIntento"`
	IDExamen     int64         `json:"idExamen"`
	IDEstudiante int64         `json:"idEstudiante"`
	Estado       EstadoIntento `json:"estado"`
	FechaInicio  time.Time     `json:"fechaInicio"`
	FechaFin     *time.Time    `json:"fechaFin,omitempty"`
	Calificacion *float64      `json:"calificacion,omitempty"`
}

// IntentoGeneradoResponse is returned by the attempt generation call.
type IntentoGeneradoResponse struct {
	IDIntento    int64 `json:"idIntento"`
	IDExamen     int64 `json:"idExamen"`
	IDEstudiante int64 `json:"idEstudiante"`
}

// PreguntaEstudiante is one snapshotted question served to a student,
// with its options but without anything that reveals correctness.
type PreguntaEstudiante struct {
	IDPregunta         int64              `json:"idPregunta"`
	Enunciado          string             `json:"enunciado"`
	IDTipo             int64              `json:"idTipo"`
	PorcentajePregunta float64            `json:"porcentajePregunta"`
	Opciones           []OpcionEstudiante `json:"opciones"`
}

// OpcionEstudiante is an option as shown to a student.
type OpcionEstudiante struct {
	IDOpcion        int64   `json:"idOpcion"`
	TextoOpcion     string  `json:"textoOpcion"`
	TextoPareja     *string `json:"textoPareja,omitempty"`
	IDTipoRespuesta int64   `json:"idTipoRespuesta"`
}

// RespuestaEstudiante is the stored answer of one attempt question.
type RespuestaEstudiante struct {
	IDIntento          int64   `json:"idIntento"`
	IDPregunta         int64   `json:"idPregunta"`
	IDOpcion           *int64  `json:"idOpcion,omitempty"`
	TiempoEmpleado     *int    `json:"tiempoEmpleado,omitempty"`
	PorcentajePregunta float64 `json:"porcentajePregunta"`
}
