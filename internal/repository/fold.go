package repository

import "github.com/DarkIsCool10/Glitter-class-back/internal/model"

// preguntaOpcionRow is one flat row of a question × option left join.
// Option columns are nullable: a question with no options still yields
// one row, with IDOpcion nil.
type preguntaOpcionRow struct {
	Pregunta model.PreguntaConOpciones
	IDOpcion *int64
	Opcion   model.Opcion
}

// foldPreguntas collapses flat join rows into one entry per question id.
// The first row seen for an id creates the entry (preserving first-seen
// question order); every later row for the same id only appends its
// option, in row order. Rows for the same question do not need to be
// contiguous. A question whose option columns are NULL keeps an empty,
// non-nil option list.
func foldPreguntas(rows []preguntaOpcionRow) []model.PreguntaConOpciones {
	indexPorID := make(map[int64]int, len(rows))
	preguntas := make([]model.PreguntaConOpciones, 0, len(rows))

	for _, row := range rows {
		idx, ok := indexPorID[row.Pregunta.IDPregunta]
		if !ok {
			p := row.Pregunta
			p.Opciones = []model.Opcion{}
			idx = len(preguntas)
			preguntas = append(preguntas, p)
			indexPorID[p.IDPregunta] = idx
		}
		if row.IDOpcion != nil {
			op := row.Opcion
			op.IDOpcion = *row.IDOpcion
			preguntas[idx].Opciones = append(preguntas[idx].Opciones, op)
		}
	}

	return preguntas
}

// preguntaEstudianteRow is one flat row of the attempt-questions join.
type preguntaEstudianteRow struct {
	Pregunta model.PreguntaEstudiante
	IDOpcion *int64
	Opcion   model.OpcionEstudiante
}

// foldPreguntasEstudiante applies the same fold rule to the student
// attempt view.
func foldPreguntasEstudiante(rows []preguntaEstudianteRow) []model.PreguntaEstudiante {
	indexPorID := make(map[int64]int, len(rows))
	preguntas := make([]model.PreguntaEstudiante, 0, len(rows))

	for _, row := range rows {
		idx, ok := indexPorID[row.Pregunta.IDPregunta]
		if !ok {
			p := row.Pregunta
			p.Opciones = []model.OpcionEstudiante{}
			idx = len(preguntas)
			preguntas = append(preguntas, p)
			indexPorID[p.IDPregunta] = idx
		}
		if row.IDOpcion != nil {
			op := row.Opcion
			op.IDOpcion = *row.IDOpcion
			preguntas[idx].Opciones = append(preguntas[idx].Opciones, op)
		}
	}

	return preguntas
}
