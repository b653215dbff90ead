package repository

import (
	"testing"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
)

func filaPregunta(idPregunta int64, idOpcion int64) preguntaOpcionRow {
	row := preguntaOpcionRow{
		Pregunta: model.PreguntaConOpciones{IDPregunta: idPregunta},
	}
	if idOpcion != 0 {
		row.IDOpcion = &idOpcion
		row.Opcion = model.Opcion{TextoOpcion: "opcion"}
	}
	return row
}

func TestFoldPreguntasAgrupaOpciones(t *testing.T) {
	rows := []preguntaOpcionRow{
		filaPregunta(1, 10),
		filaPregunta(1, 11),
		filaPregunta(2, 20),
		filaPregunta(2, 21),
		filaPregunta(2, 22),
	}

	got := foldPreguntas(rows)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].IDPregunta != 1 || got[1].IDPregunta != 2 {
		t.Errorf("orden de preguntas = [%d %d], want [1 2]", got[0].IDPregunta, got[1].IDPregunta)
	}
	if len(got[0].Opciones) != 2 {
		t.Errorf("pregunta 1: %d opciones, want 2", len(got[0].Opciones))
	}
	if len(got[1].Opciones) != 3 {
		t.Errorf("pregunta 2: %d opciones, want 3", len(got[1].Opciones))
	}
	if got[0].Opciones[0].IDOpcion != 10 || got[0].Opciones[1].IDOpcion != 11 {
		t.Errorf("pregunta 1: orden de opciones = [%d %d], want [10 11]",
			got[0].Opciones[0].IDOpcion, got[0].Opciones[1].IDOpcion)
	}
}

func TestFoldPreguntasFilasNoContiguas(t *testing.T) {
	rows := []preguntaOpcionRow{
		filaPregunta(1, 10),
		filaPregunta(2, 20),
		filaPregunta(1, 11),
	}

	got := foldPreguntas(rows)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if len(got[0].Opciones) != 2 {
		t.Errorf("pregunta 1: %d opciones, want 2", len(got[0].Opciones))
	}
	// First-seen order survives interleaving.
	if got[0].IDPregunta != 1 || got[1].IDPregunta != 2 {
		t.Errorf("orden de preguntas = [%d %d], want [1 2]", got[0].IDPregunta, got[1].IDPregunta)
	}
}

func TestFoldPreguntasSinOpciones(t *testing.T) {
	rows := []preguntaOpcionRow{
		filaPregunta(1, 0),
		filaPregunta(2, 20),
	}

	got := foldPreguntas(rows)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Opciones == nil {
		t.Error("pregunta sin opciones: Opciones es nil, want lista vacía")
	}
	if len(got[0].Opciones) != 0 {
		t.Errorf("pregunta sin opciones: %d opciones, want 0", len(got[0].Opciones))
	}
}

func TestFoldPreguntasVacio(t *testing.T) {
	got := foldPreguntas(nil)
	if got == nil {
		t.Fatal("fold de nil devolvió nil, want lista vacía")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFoldPreguntasEstudiante(t *testing.T) {
	op := func(id int64) *int64 { return &id }
	rows := []preguntaEstudianteRow{
		{Pregunta: model.PreguntaEstudiante{IDPregunta: 7}, IDOpcion: op(70)},
		{Pregunta: model.PreguntaEstudiante{IDPregunta: 7}, IDOpcion: op(71)},
		{Pregunta: model.PreguntaEstudiante{IDPregunta: 8}},
	}

	got := foldPreguntasEstudiante(rows)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if len(got[0].Opciones) != 2 || got[0].Opciones[1].IDOpcion != 71 {
		t.Errorf("pregunta 7: opciones mal plegadas: %+v", got[0].Opciones)
	}
	if len(got[1].Opciones) != 0 || got[1].Opciones == nil {
		t.Errorf("pregunta 8: want lista vacía no nil, got %+v", got[1].Opciones)
	}
}
