package grading

import (
	"math"
	"testing"
)

func TestCalificar(t *testing.T) {
	tests := []struct {
		name       string
		respuestas []Respuesta
		want       float64
	}{
		{
			name: "todas correctas",
			respuestas: []Respuesta{
				{PorcentajePregunta: 50, PorcentajeParcial: 100},
				{PorcentajePregunta: 50, PorcentajeParcial: 100},
			},
			want: 5.0,
		},
		{
			name: "todas incorrectas",
			respuestas: []Respuesta{
				{PorcentajePregunta: 50, PorcentajeParcial: 0},
				{PorcentajePregunta: 50, PorcentajeParcial: 0},
			},
			want: 0,
		},
		{
			name: "credito parcial",
			respuestas: []Respuesta{
				{PorcentajePregunta: 50, PorcentajeParcial: 100},
				{PorcentajePregunta: 50, PorcentajeParcial: 50},
			},
			want: 3.75,
		},
		{
			name: "pesos desiguales",
			respuestas: []Respuesta{
				{PorcentajePregunta: 75, PorcentajeParcial: 100},
				{PorcentajePregunta: 25, PorcentajeParcial: 0},
			},
			want: 3.75,
		},
		{
			name: "sin responder cuenta como cero",
			respuestas: []Respuesta{
				{PorcentajePregunta: 50, PorcentajeParcial: 100},
				{PorcentajePregunta: 50, PorcentajeParcial: 0},
			},
			want: 2.5,
		},
		{
			name:       "sin respuestas",
			respuestas: nil,
			want:       0,
		},
		{
			name: "pesos en cero no dividen por cero",
			respuestas: []Respuesta{
				{PorcentajePregunta: 0, PorcentajeParcial: 100},
				{PorcentajePregunta: 0, PorcentajeParcial: 100},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calificar(tt.respuestas)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Calificar() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalificarDentroDeEscala(t *testing.T) {
	respuestas := []Respuesta{
		{PorcentajePregunta: 10, PorcentajeParcial: 100},
		{PorcentajePregunta: 90, PorcentajeParcial: 100},
	}
	if got := Calificar(respuestas); got > EscalaMaxima {
		t.Errorf("Calificar() = %v, supera la escala %v", got, EscalaMaxima)
	}
}
