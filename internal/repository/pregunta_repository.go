package repository

import (
	"context"
	"errors"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// selectPreguntasConOpciones is the shared read for every nested
// question listing. The LEFT JOIN keeps questions without options.
const selectPreguntasConOpciones = `
	SELECT
		p.id_pregunta,
		p.enunciado,
		t.nombre AS tema,
		v.nombre AS visibilidad,
		d.nombre AS dificultad,
		u.nombre || ' ' || u.apellido AS docente,
		ua.nombre AS unidad_academica,
		tp.nombre AS tipo,
		p.porcentaje_nota,
		p.fecha_creacion,
		eg.nombre AS estado,
		o.id_opcion,
		o.texto_opcion,
		o.texto_pareja,
		o.id_tipo_respuesta,
		o.orden,
		o.porcentaje_parcial
	FROM preguntas p
	JOIN temas t ON p.id_tema = t.id_tema
	JOIN visibilidades_pregunta v ON p.id_visibilidad = v.id_visibilidad
	JOIN dificultades_pregunta d ON p.id_dificultad = d.id_dificultad
	JOIN usuarios u ON p.id_docente = u.id_usuario
	JOIN unidades_academicas ua ON p.id_unidad = ua.id_unidad
	JOIN tipos_pregunta tp ON p.id_tipo = tp.id_tipo
	JOIN estados_general eg ON p.id_estado = eg.id_estado
	LEFT JOIN opciones_respuesta o ON p.id_pregunta = o.id_pregunta`

// PreguntaRepository handles question and option data access.
type PreguntaRepository struct {
	pool *pgxpool.Pool
}

// NewPreguntaRepository creates a new PreguntaRepository.
func NewPreguntaRepository(pool *pgxpool.Pool) *PreguntaRepository {
	return &PreguntaRepository{pool: pool}
}

// Crear inserts a new question and returns its id.
func (r *PreguntaRepository) Crear(ctx context.Context, dto *model.CrearPreguntaRequest) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO preguntas
		   (enunciado, id_tema, id_dificultad, id_tipo, porcentaje_nota,
		    id_visibilidad, id_docente, id_unidad, id_estado)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id_pregunta`,
		dto.Enunciado, dto.IDTema, dto.IDDificultad, dto.IDTipo, dto.PorcentajeNota,
		dto.IDVisibilidad, dto.IDDocente, dto.IDUnidad, dto.IDEstado,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CrearOpcion inserts an option tied to an existing question. The
// display order is assigned server-side as max(orden)+1 within the
// question, in the same statement so concurrent inserts cannot skip it.
func (r *PreguntaRepository) CrearOpcion(ctx context.Context, idPregunta int64, dto *model.CrearOpcionRequest) (*model.OpcionCreada, error) {
	creada := &model.OpcionCreada{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO opciones_respuesta
		   (id_pregunta, texto_opcion, texto_pareja, id_tipo_respuesta, orden, porcentaje_parcial)
		 SELECT $1, $2, $3, $4, COALESCE(MAX(o.orden), 0) + 1, $5
		 FROM opciones_respuesta o
		 WHERE o.id_pregunta = $1
		 RETURNING id_opcion, orden`,
		idPregunta, dto.TextoOpcion, dto.TextoPareja, dto.IDTipoRespuesta, dto.PorcentajeParcial,
	).Scan(&creada.IDOpcion, &creada.Orden)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Foreign key violation: the parent question does not exist.
			return nil, ErrPreguntaNoEncontrada
		}
		return nil, err
	}
	return creada, nil
}

// ObtenerTodasConOpciones retrieves every question with its nested options.
func (r *PreguntaRepository) ObtenerTodasConOpciones(ctx context.Context) ([]model.PreguntaConOpciones, error) {
	return r.consultarPreguntas(ctx,
		selectPreguntasConOpciones+` ORDER BY p.id_pregunta, o.orden`)
}

// ListarPorDocente retrieves the questions owned by a docente.
func (r *PreguntaRepository) ListarPorDocente(ctx context.Context, idDocente int64) ([]model.PreguntaConOpciones, error) {
	return r.consultarPreguntas(ctx,
		selectPreguntasConOpciones+` WHERE p.id_docente = $1 ORDER BY p.id_pregunta, o.orden`,
		idDocente)
}

// ListarPorTema retrieves the questions of a topic.
func (r *PreguntaRepository) ListarPorTema(ctx context.Context, idTema int64) ([]model.PreguntaConOpciones, error) {
	return r.consultarPreguntas(ctx,
		selectPreguntasConOpciones+` WHERE p.id_tema = $1 ORDER BY p.id_pregunta, o.orden`,
		idTema)
}

// ListarPorDocenteYTema retrieves the questions of a docente within a topic.
func (r *PreguntaRepository) ListarPorDocenteYTema(ctx context.Context, idDocente, idTema int64) ([]model.PreguntaConOpciones, error) {
	return r.consultarPreguntas(ctx,
		selectPreguntasConOpciones+` WHERE p.id_docente = $1 AND p.id_tema = $2 ORDER BY p.id_pregunta, o.orden`,
		idDocente, idTema)
}

// ListarPublicas retrieves every question with public visibility.
func (r *PreguntaRepository) ListarPublicas(ctx context.Context) ([]model.PreguntaConOpciones, error) {
	return r.consultarPreguntas(ctx,
		selectPreguntasConOpciones+` WHERE v.nombre = 'publica' ORDER BY p.id_pregunta, o.orden`)
}

// consultarPreguntas runs a question×option query and folds the flat
// rows into nested objects.
func (r *PreguntaRepository) consultarPreguntas(ctx context.Context, sql string, args ...any) ([]model.PreguntaConOpciones, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []preguntaOpcionRow
	for rows.Next() {
		var row preguntaOpcionRow
		// Option columns come from the LEFT JOIN side, so every one of
		// them may be NULL.
		var textoOpcion *string
		var idTipoRespuesta *int64
		var orden *int
		var porcentajeParcial *float64
		if err := rows.Scan(
			&row.Pregunta.IDPregunta,
			&row.Pregunta.Enunciado,
			&row.Pregunta.Tema,
			&row.Pregunta.Visibilidad,
			&row.Pregunta.Dificultad,
			&row.Pregunta.Docente,
			&row.Pregunta.UnidadAcademica,
			&row.Pregunta.Tipo,
			&row.Pregunta.PorcentajeNota,
			&row.Pregunta.FechaCreacion,
			&row.Pregunta.Estado,
			&row.IDOpcion,
			&textoOpcion,
			&row.Opcion.TextoPareja,
			&idTipoRespuesta,
			&orden,
			&porcentajeParcial,
		); err != nil {
			return nil, err
		}
		if row.IDOpcion != nil {
			row.Opcion.TextoOpcion = *textoOpcion
			row.Opcion.IDTipoRespuesta = *idTipoRespuesta
			row.Opcion.Orden = *orden
			row.Opcion.PorcentajeParcial = *porcentajeParcial
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foldPreguntas(flat), nil
}
