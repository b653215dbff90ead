package repository

import (
	"context"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PublicoRepository handles the parametric lookup reads backing the
// /api/public routes.
type PublicoRepository struct {
	pool *pgxpool.Pool
}

// NewPublicoRepository creates a new PublicoRepository.
func NewPublicoRepository(pool *pgxpool.Pool) *PublicoRepository {
	return &PublicoRepository{pool: pool}
}

// ListarTemas lists every topic.
func (r *PublicoRepository) ListarTemas(ctx context.Context) ([]model.Tema, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_tema, nombre FROM temas ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	temas := []model.Tema{}
	for rows.Next() {
		var t model.Tema
		if err := rows.Scan(&t.IDTema, &t.Nombre); err != nil {
			return nil, err
		}
		temas = append(temas, t)
	}
	return temas, rows.Err()
}

// ListarTemasUnidad lists the topics of courses in one academic unit.
func (r *PublicoRepository) ListarTemasUnidad(ctx context.Context, idUnidad int64) ([]model.Tema, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id_tema, t.nombre
		 FROM temas t
		 JOIN cursos c ON t.id_curso = c.id_curso
		 WHERE c.id_unidad = $1
		 ORDER BY t.nombre`,
		idUnidad)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	temas := []model.Tema{}
	for rows.Next() {
		var t model.Tema
		if err := rows.Scan(&t.IDTema, &t.Nombre); err != nil {
			return nil, err
		}
		temas = append(temas, t)
	}
	return temas, rows.Err()
}

// ListarDificultades lists every question difficulty.
func (r *PublicoRepository) ListarDificultades(ctx context.Context) ([]model.Dificultad, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_dificultad, nombre FROM dificultades_pregunta ORDER BY id_dificultad`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dificultades := []model.Dificultad{}
	for rows.Next() {
		var d model.Dificultad
		if err := rows.Scan(&d.IDDificultad, &d.Nombre); err != nil {
			return nil, err
		}
		dificultades = append(dificultades, d)
	}
	return dificultades, rows.Err()
}

// ListarTiposPregunta lists every question type.
func (r *PublicoRepository) ListarTiposPregunta(ctx context.Context) ([]model.TipoPregunta, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_tipo, nombre FROM tipos_pregunta ORDER BY id_tipo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tipos := []model.TipoPregunta{}
	for rows.Next() {
		var t model.TipoPregunta
		if err := rows.Scan(&t.IDTipo, &t.Nombre); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

// ListarVisibilidades lists every question visibility.
func (r *PublicoRepository) ListarVisibilidades(ctx context.Context) ([]model.Visibilidad, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id_visibilidad, nombre FROM visibilidades_pregunta ORDER BY id_visibilidad`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visibilidades := []model.Visibilidad{}
	for rows.Next() {
		var v model.Visibilidad
		if err := rows.Scan(&v.IDVisibilidad, &v.Nombre); err != nil {
			return nil, err
		}
		visibilidades = append(visibilidades, v)
	}
	return visibilidades, rows.Err()
}

// ListarUnidades lists every academic unit.
func (r *PublicoRepository) ListarUnidades(ctx context.Context) ([]model.UnidadAcademica, error) {
	return r.consultarUnidades(ctx,
		`SELECT id_unidad, nombre FROM unidades_academicas ORDER BY nombre`)
}

// ListarUnidadesDocente lists the academic units a docente has groups in.
func (r *PublicoRepository) ListarUnidadesDocente(ctx context.Context, idDocente int64) ([]model.UnidadAcademica, error) {
	return r.consultarUnidades(ctx,
		`SELECT DISTINCT ua.id_unidad, ua.nombre
		 FROM unidades_academicas ua
		 JOIN cursos c ON c.id_unidad = ua.id_unidad
		 JOIN grupos g ON g.id_curso = c.id_curso
		 WHERE g.id_docente = $1
		 ORDER BY ua.nombre`,
		idDocente)
}

// ListarGruposDocente lists the groups a docente is assigned to.
func (r *PublicoRepository) ListarGruposDocente(ctx context.Context, idDocente int64) ([]model.Grupo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT g.id_grupo, g.nombre, c.id_curso, c.nombre
		 FROM grupos g
		 JOIN cursos c ON g.id_curso = c.id_curso
		 WHERE g.id_docente = $1
		 ORDER BY c.nombre, g.nombre`,
		idDocente)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grupos := []model.Grupo{}
	for rows.Next() {
		var g model.Grupo
		if err := rows.Scan(&g.IDGrupo, &g.Nombre, &g.IDCurso, &g.NombreCurso); err != nil {
			return nil, err
		}
		grupos = append(grupos, g)
	}
	return grupos, rows.Err()
}

// ListarCursosEstudiante lists the courses a student is enrolled in,
// through group membership.
func (r *PublicoRepository) ListarCursosEstudiante(ctx context.Context, idEstudiante int64) ([]model.Curso, error) {
	return r.consultarCursos(ctx,
		`SELECT gu.id_usuario, c.id_curso, c.nombre, c.creditos, ua.nombre,
			g.id_grupo, g.nombre, d.nombre || ' ' || d.apellido
		 FROM grupo_usuarios gu
		 JOIN grupos g ON gu.id_grupo = g.id_grupo
		 JOIN cursos c ON g.id_curso = c.id_curso
		 JOIN unidades_academicas ua ON c.id_unidad = ua.id_unidad
		 JOIN usuarios d ON g.id_docente = d.id_usuario
		 WHERE gu.id_usuario = $1
		 ORDER BY c.nombre`,
		idEstudiante)
}

// ListarCursosDocente lists the courses a docente has groups in.
func (r *PublicoRepository) ListarCursosDocente(ctx context.Context, idDocente int64) ([]model.Curso, error) {
	return r.consultarCursos(ctx,
		`SELECT g.id_docente, c.id_curso, c.nombre, c.creditos, ua.nombre,
			g.id_grupo, g.nombre, d.nombre || ' ' || d.apellido
		 FROM grupos g
		 JOIN cursos c ON g.id_curso = c.id_curso
		 JOIN unidades_academicas ua ON c.id_unidad = ua.id_unidad
		 JOIN usuarios d ON g.id_docente = d.id_usuario
		 WHERE g.id_docente = $1
		 ORDER BY c.nombre, g.nombre`,
		idDocente)
}

func (r *PublicoRepository) consultarUnidades(ctx context.Context, sql string, args ...any) ([]model.UnidadAcademica, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unidades := []model.UnidadAcademica{}
	for rows.Next() {
		var u model.UnidadAcademica
		if err := rows.Scan(&u.IDUnidad, &u.Nombre); err != nil {
			return nil, err
		}
		unidades = append(unidades, u)
	}
	return unidades, rows.Err()
}

func (r *PublicoRepository) consultarCursos(ctx context.Context, sql string, args ...any) ([]model.Curso, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cursos := []model.Curso{}
	for rows.Next() {
		var c model.Curso
		if err := rows.Scan(&c.IDUsuario, &c.IDCurso, &c.NombreCurso, &c.Creditos,
			&c.UnidadAcademica, &c.IDGrupo, &c.NombreGrupo, &c.NombreDocente); err != nil {
			return nil, err
		}
		cursos = append(cursos, c)
	}
	return cursos, rows.Err()
}
