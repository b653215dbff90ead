package repository

import (
	"context"
	"errors"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectExamenes = `
	SELECT
		e.id_examen,
		e.id_tema,
		t.nombre AS tema,
		e.titulo,
		e.descripcion,
		COALESCE(e.cantidad_preguntas, 0),
		COALESCE(e.preguntas_mostradas, 0),
		e.tiempo_limite,
		e.fecha_disponible,
		e.fecha_cierre,
		e.peso_en_curso,
		e.umbral_aprobacion,
		e.id_unidad,
		ua.nombre AS unidad_academica,
		eg.nombre AS estado
	FROM examenes e
	JOIN temas t ON e.id_tema = t.id_tema
	JOIN unidades_academicas ua ON e.id_unidad = ua.id_unidad
	JOIN estados_general eg ON e.id_estado = eg.id_estado`

// ExamenRepository handles exam data access.
type ExamenRepository struct {
	pool *pgxpool.Pool
}

// NewExamenRepository creates a new ExamenRepository.
func NewExamenRepository(pool *pgxpool.Pool) *ExamenRepository {
	return &ExamenRepository{pool: pool}
}

// Crear inserts a new exam and returns its generated id together with
// the topic it was created under.
func (r *ExamenRepository) Crear(ctx context.Context, req *model.CrearExamenRequest) (*model.ExamenCreado, error) {
	creado := &model.ExamenCreado{IDTema: req.IDTema}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO examenes (
			id_grupo, id_docente, id_tema, titulo, descripcion,
			tiempo_limite, fecha_disponible, fecha_cierre,
			peso_en_curso, umbral_aprobacion, aleatorio,
			mostrar_resultados, id_unidad, id_estado
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id_examen`,
		req.IDGrupo, req.IDDocente, req.IDTema, req.Titulo, req.Descripcion,
		req.TiempoLimite, req.FechaDisponible, req.FechaCierre,
		req.PesoEnCurso, req.UmbralAprobacion, req.Aleatorio,
		req.MostrarResultados, req.IDUnidad, req.IDEstado,
	).Scan(&creado.IDExamen)
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// ListarPorDocente retrieves the exams authored by a docente, newest
// availability first.
func (r *ExamenRepository) ListarPorDocente(ctx context.Context, idDocente int64) ([]model.ObtenerExamen, error) {
	return r.consultarExamenes(ctx,
		selectExamenes+` WHERE e.id_docente = $1 ORDER BY e.fecha_disponible DESC`,
		idDocente)
}

// ListarPorGrupo retrieves the exams assigned to a group, newest
// availability first.
func (r *ExamenRepository) ListarPorGrupo(ctx context.Context, idGrupo int64) ([]model.ObtenerExamen, error) {
	return r.consultarExamenes(ctx,
		selectExamenes+` WHERE e.id_grupo = $1 ORDER BY e.fecha_disponible DESC`,
		idGrupo)
}

// Editar updates the editable subset of an exam.
func (r *ExamenRepository) Editar(ctx context.Context, req *model.EditarExamenRequest) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE examenes
		 SET titulo = $1, descripcion = $2, preguntas_mostradas = COALESCE($3, preguntas_mostradas),
		     tiempo_limite = $4, fecha_disponible = $5, fecha_cierre = $6,
		     peso_en_curso = $7, umbral_aprobacion = $8
		 WHERE id_examen = $9`,
		req.Titulo, req.Descripcion, req.PreguntasMostradas,
		req.TiempoLimite, req.FechaDisponible, req.FechaCierre,
		req.PesoEnCurso, req.UmbralAprobacion, req.IDExamen)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExamenNoEncontrado
	}
	return nil
}

// Eliminar deletes an exam. Attempts and question links follow through
// ON DELETE CASCADE.
func (r *ExamenRepository) Eliminar(ctx context.Context, idExamen int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM examenes WHERE id_examen = $1`, idExamen)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExamenNoEncontrado
	}
	return nil
}

// AgregarPregunta attaches a question to an exam's pool. The question
// must share the exam's topic and academic unit.
func (r *ExamenRepository) AgregarPregunta(ctx context.Context, idExamen, idPregunta int64, porcentaje float64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var idTemaExamen, idUnidadExamen int64
	err = tx.QueryRow(ctx,
		`SELECT id_tema, id_unidad FROM examenes WHERE id_examen = $1`,
		idExamen,
	).Scan(&idTemaExamen, &idUnidadExamen)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrExamenNoEncontrado
	}
	if err != nil {
		return err
	}

	var idTemaPregunta, idUnidadPregunta int64
	err = tx.QueryRow(ctx,
		`SELECT id_tema, id_unidad FROM preguntas WHERE id_pregunta = $1`,
		idPregunta,
	).Scan(&idTemaPregunta, &idUnidadPregunta)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPreguntaNoEncontrada
	}
	if err != nil {
		return err
	}

	if idTemaExamen != idTemaPregunta || idUnidadExamen != idUnidadPregunta {
		return ErrTemaNoCoincide
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO examen_preguntas (id_examen, id_pregunta, porcentaje)
		 VALUES ($1, $2, $3)`,
		idExamen, idPregunta, porcentaje)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrPreguntaYaAgregada
		}
		return err
	}

	return tx.Commit(ctx)
}

// ActualizarCantidadPreguntas persists the total and displayed question
// counts once the pool has been assembled.
func (r *ExamenRepository) ActualizarCantidadPreguntas(ctx context.Context, req *model.CantidadPreguntasRequest) (*model.CantidadPreguntasActualizada, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE examenes
		 SET cantidad_preguntas = $1, preguntas_mostradas = $2
		 WHERE id_examen = $3`,
		req.TotalPreguntas, req.PreguntasMostrar, req.IDExamen)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrExamenNoEncontrado
	}
	return &model.CantidadPreguntasActualizada{
		IDExamen:         req.IDExamen,
		TotalPreguntas:   req.TotalPreguntas,
		PreguntasMostrar: req.PreguntasMostrar,
	}, nil
}

func (r *ExamenRepository) consultarExamenes(ctx context.Context, sql string, args ...any) ([]model.ObtenerExamen, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	examenes := []model.ObtenerExamen{}
	for rows.Next() {
		var e model.ObtenerExamen
		if err := rows.Scan(
			&e.IDExamen, &e.IDTema, &e.Tema, &e.Titulo, &e.Descripcion,
			&e.CantidadPreguntas, &e.PreguntasMostradas, &e.TiempoLimite,
			&e.FechaDisponible, &e.FechaCierre, &e.PesoEnCurso,
			&e.UmbralAprobacion, &e.IDUnidad, &e.UnidadAcademica, &e.Estado,
		); err != nil {
			return nil, err
		}
		examenes = append(examenes, e)
	}
	return examenes, rows.Err()
}
