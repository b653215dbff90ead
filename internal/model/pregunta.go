package model

import "time"

// Pregunta represents a question row as stored.
type Pregunta struct {
	IDPregunta     int64     `json:"idPregunta"`
	Enunciado      string    `json:"enunciado"`
	IDTema         int64     `json:"idTema"`
	IDDificultad   int64     `json:"idDificultad"`
	IDTipo         int64     `json:"idTipo"`
	PorcentajeNota float64   `json:"porcentajeNota"`
	IDVisibilidad  int64     `json:"idVisibilidad"`
	IDDocente      int64     `json:"idDocente"`
	IDUnidad       int64     `json:"idUnidad"`
	IDEstado       int64     `json:"idEstado"`
	FechaCreacion  time.Time `json:"fechaCreacion"`
}

// Opcion is one answer choice belonging to a question. TextoPareja is
// only set for matching-type questions.
type Opcion struct {
	IDOpcion          int64   `json:"idOpcion"`
	TextoOpcion       string  `json:"textoOpcion"`
	TextoPareja       *string `json:"textoPareja,omitempty"`
	IDTipoRespuesta   int64   `json:"idTipoRespuesta"`
	Orden             int     `json:"orden"`
	PorcentajeParcial float64 `json:"porcentajeParcial"`
}

// PreguntaConOpciones is the canonical nested read shape: one question
// with its resolved lookup names and the full option list (possibly
// empty).
type PreguntaConOpciones struct {
	IDPregunta      int64     `json:"idPregunta"`
	Enunciado       string    `json:"enunciado"`
	Tema            string    `json:"tema"`
	Visibilidad     string    `json:"visibilidad"`
	Dificultad      string    `json:"dificultad"`
	Docente         string    `json:"docente"`
	UnidadAcademica string    `json:"unidadAcademica"`
	Tipo            string    `json:"tipo"`
	PorcentajeNota  float64   `json:"porcentajeNota"`
	FechaCreacion   time.Time `json:"fechaCreacion"`
	Estado          string    `json:"estado"`
	Opciones        []Opcion  `json:"opciones"`
}

// CrearPreguntaRequest is the payload for creating a question.
type CrearPreguntaRequest struct {
	Enunciado      string  `json:"enunciado" binding:"required,min=1,max=4000"`
	IDTema         int64   `json:"idTema" binding:"required"`
	IDDificultad   int64   `json:"idDificultad" binding:"required"`
	IDTipo         int64   `json:"idTipo" binding:"required"`
	PorcentajeNota float64 `json:"porcentajeNota" binding:"min=0,max=100"`
	IDVisibilidad  int64   `json:"idVisibilidad" binding:"required"`
	IDDocente      int64   `json:"idDocente" binding:"required"`
	IDUnidad       int64   `json:"idUnidad" binding:"required"`
	IDEstado       int64   `json:"idEstado" binding:"required"`
}

// CrearOpcionRequest is the payload for attaching an option to an
// existing question.
type CrearOpcionRequest struct {
	TextoOpcion       string  `json:"textoOpcion" binding:"required,min=1,max=2000"`
	TextoPareja       *string `json:"textoPareja" binding:"omitempty,max=2000"`
	IDTipoRespuesta   int64   `json:"idTipoRespuesta" binding:"required"`
	PorcentajeParcial float64 `json:"porcentajeParcial" binding:"min=0,max=100"`
}

// OpcionCreada is returned after creating an option: the new id plus
// the display order the server assigned within the question.
type OpcionCreada struct {
	IDOpcion int64 `json:"idOpcion"`
	Orden    int   `json:"orden"`
}
