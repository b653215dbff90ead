package repository

import (
	"context"
	"errors"

	"github.com/DarkIsCool10/Glitter-class-back/internal/grading"
	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IntentoRepository handles student attempt data access. Attempt
// uniqueness is enforced by the UNIQUE (id_examen, id_estudiante)
// constraint, not by a read-then-insert check.
type IntentoRepository struct {
	pool *pgxpool.Pool
}

// NewIntentoRepository creates a new IntentoRepository.
func NewIntentoRepository(pool *pgxpool.Pool) *IntentoRepository {
	return &IntentoRepository{pool: pool}
}

// Generar creates the attempt row and snapshots its question set from
// the exam pool in one transaction. When the exam is marked aleatorio
// the pool is sampled in random order; otherwise insertion order is
// kept. preguntas_mostradas caps the snapshot when set.
func (r *IntentoRepository) Generar(ctx context.Context, idExamen, idEstudiante int64) (*model.IntentoGeneradoResponse, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var aleatorio bool
	var preguntasMostradas *int
	err = tx.QueryRow(ctx,
		`SELECT aleatorio, preguntas_mostradas FROM examenes WHERE id_examen = $1`,
		idExamen,
	).Scan(&aleatorio, &preguntasMostradas)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExamenNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	var idIntento int64
	err = tx.QueryRow(ctx,
		`INSERT INTO intentos_examen (id_examen, id_estudiante)
		 VALUES ($1, $2)
		 ON CONFLICT (id_examen, id_estudiante) DO NOTHING
		 RETURNING id_intento`,
		idExamen, idEstudiante,
	).Scan(&idIntento)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIntentoDuplicado
	}
	if err != nil {
		return nil, err
	}

	orden := `ep.id_pregunta`
	if aleatorio {
		orden = `random()`
	}
	limite := -1
	if preguntasMostradas != nil && *preguntasMostradas > 0 {
		limite = *preguntasMostradas
	}
	tag, err := tx.Exec(ctx,
		`INSERT INTO intento_preguntas (id_intento, id_pregunta, porcentaje_pregunta, orden)
		 SELECT $1, s.id_pregunta, s.porcentaje, ROW_NUMBER() OVER ()
		 FROM (
			SELECT ep.id_pregunta, ep.porcentaje
			FROM examen_preguntas ep
			WHERE ep.id_examen = $2
			ORDER BY `+orden+`
			LIMIT NULLIF($3, -1)
		 ) s`,
		idIntento, idExamen, limite)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrExamenSinPreguntas
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &model.IntentoGeneradoResponse{
		IDIntento:    idIntento,
		IDExamen:     idExamen,
		IDEstudiante: idEstudiante,
	}, nil
}

// ObtenerPreguntas retrieves the snapshotted questions of the attempt
// a student holds on an exam, in snapshot order, without exposing
// option credit.
func (r *IntentoRepository) ObtenerPreguntas(ctx context.Context, idExamen, idEstudiante int64) ([]model.PreguntaEstudiante, error) {
	var idIntento int64
	err := r.pool.QueryRow(ctx,
		`SELECT id_intento FROM intentos_examen
		 WHERE id_examen = $1 AND id_estudiante = $2`,
		idExamen, idEstudiante,
	).Scan(&idIntento)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIntentoNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT
			p.id_pregunta,
			p.enunciado,
			p.id_tipo,
			ip.porcentaje_pregunta,
			o.id_opcion,
			o.texto_opcion,
			o.texto_pareja,
			o.id_tipo_respuesta
		 FROM intento_preguntas ip
		 JOIN preguntas p ON ip.id_pregunta = p.id_pregunta
		 LEFT JOIN opciones_respuesta o ON o.id_pregunta = p.id_pregunta
		 WHERE ip.id_intento = $1
		 ORDER BY ip.orden, o.orden`,
		idIntento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []preguntaEstudianteRow
	for rows.Next() {
		var row preguntaEstudianteRow
		var textoOpcion *string
		var idTipoRespuesta *int64
		if err := rows.Scan(
			&row.Pregunta.IDPregunta,
			&row.Pregunta.Enunciado,
			&row.Pregunta.IDTipo,
			&row.Pregunta.PorcentajePregunta,
			&row.IDOpcion,
			&textoOpcion,
			&row.Opcion.TextoPareja,
			&idTipoRespuesta,
		); err != nil {
			return nil, err
		}
		if row.IDOpcion != nil {
			row.Opcion.TextoOpcion = *textoOpcion
			row.Opcion.IDTipoRespuesta = *idTipoRespuesta
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foldPreguntasEstudiante(flat), nil
}

// RegistrarRespuesta stores the selected option for one snapshotted
// question. The option must belong to that question and the attempt to
// the acting student; answers on a finalized attempt are rejected.
func (r *IntentoRepository) RegistrarRespuesta(ctx context.Context, idIntento, idPregunta, idOpcion, idEstudiante int64, tiempoEmpleado *int) (*model.RespuestaEstudiante, error) {
	resp := &model.RespuestaEstudiante{
		IDIntento:      idIntento,
		IDPregunta:     idPregunta,
		IDOpcion:       &idOpcion,
		TiempoEmpleado: tiempoEmpleado,
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE intento_preguntas ip
		 SET id_opcion_seleccionada = $3, tiempo_empleado = COALESCE($4, ip.tiempo_empleado)
		 FROM intentos_examen i
		 WHERE ip.id_intento = $1
		   AND ip.id_pregunta = $2
		   AND i.id_intento = ip.id_intento
		   AND i.id_estudiante = $5
		   AND i.estado = $6
		   AND EXISTS (
			SELECT 1 FROM opciones_respuesta o
			WHERE o.id_opcion = $3 AND o.id_pregunta = $2
		   )
		 RETURNING ip.porcentaje_pregunta`,
		idIntento, idPregunta, idOpcion, tiempoEmpleado, idEstudiante, model.IntentoGenerado,
	).Scan(&resp.PorcentajePregunta)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRespuestaNoRegistrada
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Finalizar closes an attempt and computes its grade from the stored
// answers. Only the attempt's owner can finalize it; an attempt held
// by another student is reported as not found. Finalizing an already
// finalized attempt returns the stored grade unchanged.
func (r *IntentoRepository) Finalizar(ctx context.Context, idIntento, idEstudiante int64) (*model.Intento, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	intento := &model.Intento{}
	err = tx.QueryRow(ctx,
		`SELECT id_intento, id_examen, id_estudiante, estado, fecha_inicio, fecha_fin, calificacion
		 FROM intentos_examen
		 WHERE id_intento = $1 AND id_estudiante = $2
		 FOR UPDATE`,
		idIntento, idEstudiante,
	).Scan(&intento.IDIntento, &intento.IDExamen, &intento.IDEstudiante,
		&intento.Estado, &intento.FechaInicio, &intento.FechaFin, &intento.Calificacion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIntentoNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	if intento.Estado == model.IntentoFinalizado {
		return intento, nil
	}

	rows, err := tx.Query(ctx,
		`SELECT ip.porcentaje_pregunta, COALESCE(o.porcentaje_parcial, 0)
		 FROM intento_preguntas ip
		 LEFT JOIN opciones_respuesta o ON o.id_opcion = ip.id_opcion_seleccionada
		 WHERE ip.id_intento = $1`,
		idIntento)
	if err != nil {
		return nil, err
	}
	var respuestas []grading.Respuesta
	for rows.Next() {
		var resp grading.Respuesta
		if err := rows.Scan(&resp.PorcentajePregunta, &resp.PorcentajeParcial); err != nil {
			rows.Close()
			return nil, err
		}
		respuestas = append(respuestas, resp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	nota := grading.Calificar(respuestas)
	err = tx.QueryRow(ctx,
		`UPDATE intentos_examen
		 SET estado = $2, fecha_fin = NOW(), calificacion = $3
		 WHERE id_intento = $1
		 RETURNING estado, fecha_fin, calificacion`,
		idIntento, model.IntentoFinalizado, nota,
	).Scan(&intento.Estado, &intento.FechaFin, &intento.Calificacion)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return intento, nil
}
