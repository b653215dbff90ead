package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DarkIsCool10/Glitter-class-back/internal/model"
	"github.com/DarkIsCool10/Glitter-class-back/internal/repository"
)

// intentoStoreFalso keeps attempts in memory with the same contract as
// the pgx-backed store: one attempt per (exam, student), writes only by
// the owner, idempotent finalize, grade 0 without answers.
type intentoStoreFalso struct {
	siguienteID int64
	intentos    map[[2]int64]*model.Intento
	porID       map[int64]*model.Intento
}

func nuevoIntentoStoreFalso() *intentoStoreFalso {
	return &intentoStoreFalso{
		siguienteID: 1,
		intentos:    make(map[[2]int64]*model.Intento),
		porID:       make(map[int64]*model.Intento),
	}
}

func (f *intentoStoreFalso) Generar(_ context.Context, idExamen, idEstudiante int64) (*model.IntentoGeneradoResponse, error) {
	clave := [2]int64{idExamen, idEstudiante}
	if _, existe := f.intentos[clave]; existe {
		return nil, repository.ErrIntentoDuplicado
	}
	intento := &model.Intento{
		IDIntento:    f.siguienteID,
		IDExamen:     idExamen,
		IDEstudiante: idEstudiante,
		Estado:       model.IntentoGenerado,
	}
	f.siguienteID++
	f.intentos[clave] = intento
	f.porID[intento.IDIntento] = intento
	return &model.IntentoGeneradoResponse{
		IDIntento:    intento.IDIntento,
		IDExamen:     idExamen,
		IDEstudiante: idEstudiante,
	}, nil
}

func (f *intentoStoreFalso) ObtenerPreguntas(_ context.Context, idExamen, idEstudiante int64) ([]model.PreguntaEstudiante, error) {
	if _, existe := f.intentos[[2]int64{idExamen, idEstudiante}]; !existe {
		return nil, repository.ErrIntentoNoEncontrado
	}
	return []model.PreguntaEstudiante{}, nil
}

func (f *intentoStoreFalso) RegistrarRespuesta(_ context.Context, idIntento, idPregunta, idOpcion, idEstudiante int64, tiempoEmpleado *int) (*model.RespuestaEstudiante, error) {
	intento, existe := f.porID[idIntento]
	if !existe || intento.IDEstudiante != idEstudiante || intento.Estado != model.IntentoGenerado {
		return nil, repository.ErrRespuestaNoRegistrada
	}
	return &model.RespuestaEstudiante{
		IDIntento:  idIntento,
		IDPregunta: idPregunta,
		IDOpcion:   &idOpcion,
	}, nil
}

func (f *intentoStoreFalso) Finalizar(_ context.Context, idIntento, idEstudiante int64) (*model.Intento, error) {
	intento, existe := f.porID[idIntento]
	if !existe || intento.IDEstudiante != idEstudiante {
		return nil, repository.ErrIntentoNoEncontrado
	}
	if intento.Estado == model.IntentoFinalizado {
		return intento, nil
	}
	intento.Estado = model.IntentoFinalizado
	nota := 0.0
	intento.Calificacion = &nota
	return intento, nil
}

func TestIntentoServiceGenerarDuplicado(t *testing.T) {
	s := NewIntentoService(nuevoIntentoStoreFalso())
	ctx := context.Background()

	primero, err := s.Generar(ctx, 1, 100)
	if err != nil {
		t.Fatalf("primer Generar: %v", err)
	}
	if primero.IDExamen != 1 || primero.IDEstudiante != 100 {
		t.Errorf("intento generado = %+v", primero)
	}

	_, err = s.Generar(ctx, 1, 100)
	if !errors.Is(err, repository.ErrIntentoDuplicado) {
		t.Errorf("segundo Generar = %v, want ErrIntentoDuplicado", err)
	}

	// Otro estudiante del mismo examen sí genera.
	if _, err := s.Generar(ctx, 1, 101); err != nil {
		t.Errorf("Generar con otro estudiante: %v", err)
	}
}

func TestIntentoServiceFinalizarIdempotente(t *testing.T) {
	s := NewIntentoService(nuevoIntentoStoreFalso())
	ctx := context.Background()

	generado, err := s.Generar(ctx, 2, 200)
	if err != nil {
		t.Fatalf("Generar: %v", err)
	}

	primero, err := s.Finalizar(ctx, generado.IDIntento, 200)
	if err != nil {
		t.Fatalf("Finalizar: %v", err)
	}
	if primero.Estado != model.IntentoFinalizado {
		t.Errorf("estado = %q, want FINALIZADO", primero.Estado)
	}
	if primero.Calificacion == nil {
		t.Fatal("calificación nil tras finalizar")
	}

	segundo, err := s.Finalizar(ctx, generado.IDIntento, 200)
	if err != nil {
		t.Fatalf("segundo Finalizar: %v", err)
	}
	if *segundo.Calificacion != *primero.Calificacion {
		t.Errorf("la calificación cambió al re-finalizar: %v → %v",
			*primero.Calificacion, *segundo.Calificacion)
	}
}

func TestIntentoServiceRespuestaTrasFinalizar(t *testing.T) {
	s := NewIntentoService(nuevoIntentoStoreFalso())
	ctx := context.Background()

	generado, _ := s.Generar(ctx, 3, 300)
	if _, err := s.Finalizar(ctx, generado.IDIntento, 300); err != nil {
		t.Fatalf("Finalizar: %v", err)
	}

	_, err := s.RegistrarRespuesta(ctx, generado.IDIntento, 1, 1, 300, nil)
	if !errors.Is(err, repository.ErrRespuestaNoRegistrada) {
		t.Errorf("respuesta sobre intento finalizado = %v, want ErrRespuestaNoRegistrada", err)
	}
}

func TestIntentoServiceIntentoAjeno(t *testing.T) {
	s := NewIntentoService(nuevoIntentoStoreFalso())
	ctx := context.Background()

	generado, err := s.Generar(ctx, 4, 400)
	if err != nil {
		t.Fatalf("Generar: %v", err)
	}

	// Otro estudiante no puede responder ni cerrar el intento.
	_, err = s.RegistrarRespuesta(ctx, generado.IDIntento, 1, 1, 401, nil)
	if !errors.Is(err, repository.ErrRespuestaNoRegistrada) {
		t.Errorf("respuesta ajena = %v, want ErrRespuestaNoRegistrada", err)
	}
	_, err = s.Finalizar(ctx, generado.IDIntento, 401)
	if !errors.Is(err, repository.ErrIntentoNoEncontrado) {
		t.Errorf("finalizar ajeno = %v, want ErrIntentoNoEncontrado", err)
	}

	// El dueño sigue pudiendo cerrar.
	if _, err := s.Finalizar(ctx, generado.IDIntento, 400); err != nil {
		t.Errorf("finalizar propio: %v", err)
	}
}

func TestIntentoServiceObtenerSinGenerar(t *testing.T) {
	s := NewIntentoService(nuevoIntentoStoreFalso())

	_, err := s.ObtenerPreguntas(context.Background(), 9, 900)
	if !errors.Is(err, repository.ErrIntentoNoEncontrado) {
		t.Errorf("ObtenerPreguntas sin intento = %v, want ErrIntentoNoEncontrado", err)
	}
}
