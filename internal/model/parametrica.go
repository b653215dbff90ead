package model

// Parametric lookup shapes. These are read-only reference rows; every
// request re-queries the database, there is no cache layer in front.

// Tema is a course topic.
type Tema struct {
	IDTema int64  `json:"idTema"`
	Nombre string `json:"nombre"`
}

// Dificultad is a question difficulty level.
type Dificultad struct {
	IDDificultad int64  `json:"idDificultad"`
	Nombre       string `json:"nombre"`
}

// TipoPregunta is a question type (multiple choice, matching, ...).
type TipoPregunta struct {
	IDTipo int64  `json:"idTipo"`
	Nombre string `json:"nombre"`
}

// Visibilidad is a question visibility level.
type Visibilidad struct {
	IDVisibilidad int64  `json:"idVisibilidad"`
	Nombre        string `json:"nombre"`
}

// UnidadAcademica is an academic organizational unit.
type UnidadAcademica struct {
	IDUnidad int64  `json:"idUnidad"`
	Nombre   string `json:"nombre"`
}

// Grupo is a course group a docente teaches or a student belongs to.
type Grupo struct {
	IDGrupo     int64  `json:"idGrupo"`
	Nombre      string `json:"nombre"`
	IDCurso     int64  `json:"idCurso"`
	NombreCurso string `json:"nombreCurso"`
}

// Curso is a course enrollment row as seen from either role.
type Curso struct {
	IDUsuario       int64  `json:"idUsuario"`
	IDCurso         int64  `json:"idCurso"`
	NombreCurso     string `json:"nombreCurso"`
	Creditos        int    `json:"creditos"`
	UnidadAcademica string `json:"unidadAcademica"`
	IDGrupo         int64  `json:"idGrupo"`
	NombreGrupo     string `json:"nombreGrupo"`
	NombreDocente   string `json:"nombreDocente"`
}
