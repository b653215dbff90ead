package model

import "time"

// CrearExamenRequest is the payload for creating an exam. The question
// counts are set later through ActualizarCantidadPreguntas, once the
// pool is attached.
type CrearExamenRequest struct {
	IDGrupo           int64      `json:"idGrupo" binding:"required"`
	IDDocente         int64      `json:"idDocente" binding:"required"`
	IDTema            int64      `json:"idTema" binding:"required"`
	Titulo            string     `json:"titulo" binding:"required,min=3,max=255"`
	Descripcion       string     `json:"descripcion" binding:"max=4000"`
	TiempoLimite      int        `json:"tiempoLimite" binding:"required,min=1,max=480"`
	FechaDisponible   *time.Time `json:"fechaDisponible" binding:"required"`
	FechaCierre       *time.Time `json:"fechaCierre" binding:"required,gtfield=FechaDisponible"`
	PesoEnCurso       float64    `json:"pesoEnCurso" binding:"min=0,max=100"`
	UmbralAprobacion  float64    `json:"umbralAprobacion" binding:"min=0,max=5"`
	Aleatorio         bool       `json:"aleatorio"`
	MostrarResultados bool       `json:"mostrarResultados"`
	IDUnidad          int64      `json:"idUnidad" binding:"required"`
	IDEstado          int64      `json:"idEstado" binding:"required"`
}

// ExamenCreado is the response for a successful exam creation.
type ExamenCreado struct {
	IDExamen int64 `json:"idExamen"`
	IDTema   int64 `json:"idTema"`
}

// ObtenerExamen is the flat exam read shape used by the docente and
// grupo listings.
type ObtenerExamen struct {
	IDExamen           int64     `json:"idExamen"`
	IDTema             int64     `json:"idTema"`
	Tema               string    `json:"tema"`
	Titulo             string    `json:"titulo"`
	Descripcion        string    `json:"descripcion"`
	CantidadPreguntas  int       `json:"cantidadPreguntas"`
	PreguntasMostradas int       `json:"preguntasMostradas"`
	TiempoLimite       int       `json:"tiempoLimite"`
	FechaDisponible    time.Time `json:"fechaDisponible"`
	FechaCierre        time.Time `json:"fechaCierre"`
	PesoEnCurso        float64   `json:"pesoEnCurso"`
	UmbralAprobacion   float64   `json:"umbralAprobacion"`
	IDUnidad           int64     `json:"idUnidad"`
	UnidadAcademica    string    `json:"unidadAcademica"`
	Estado             string    `json:"estado"`
}

// EditarExamenRequest is the editable subset of an exam.
type EditarExamenRequest struct {
	IDExamen           int64      `json:"idExamen" binding:"required"`
	Titulo             string     `json:"titulo" binding:"required,min=3,max=255"`
	Descripcion        string     `json:"descripcion" binding:"max=4000"`
	PreguntasMostradas *int       `json:"preguntasMostradas" binding:"omitempty,min=0"`
	TiempoLimite       int        `json:"tiempoLimite" binding:"required,min=1,max=480"`
	FechaDisponible    *time.Time `json:"fechaDisponible" binding:"required"`
	FechaCierre        *time.Time `json:"fechaCierre" binding:"required,gtfield=FechaDisponible"`
	PesoEnCurso        float64    `json:"pesoEnCurso" binding:"min=0,max=100"`
	UmbralAprobacion   float64    `json:"umbralAprobacion" binding:"min=0,max=5"`
}

// CantidadPreguntasRequest updates the total/displayed question counts
// for an exam after the pool has been assembled.
type CantidadPreguntasRequest struct {
	IDExamen         int64 `json:"idExamen" binding:"required"`
	TotalPreguntas   int   `json:"totalPreguntas" binding:"required,min=1"`
	PreguntasMostrar int   `json:"preguntasMostrar" binding:"required,min=1"`
}

// CantidadPreguntasActualizada echoes the counts that were persisted.
type CantidadPreguntasActualizada struct {
	IDExamen         int64 `json:"idExamen"`
	TotalPreguntas   int   `json:"totalPreguntas"`
	PreguntasMostrar int   `json:"preguntasMostrar"`
}
