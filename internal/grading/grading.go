// Package grading computes the final score of an exam attempt from its
// snapshotted questions and the partial credit of the selected options.
package grading

// Respuesta carries the two scoring inputs of one attempt question: the
// weight the question has in the exam and the partial credit of the
// option the student picked. An unanswered question has zero credit.
type Respuesta struct {
	PorcentajePregunta float64
	PorcentajeParcial  float64
}

// EscalaMaxima is the top of the institutional grade scale.
const EscalaMaxima = 5.0

// Calificar returns the attempt grade on the 0..5 scale as the
// weighted mean of per-question partial credit:
//
//	nota = EscalaMaxima * Σ(w_i * p_i/100) / Σ(w_i)
//
// where w_i is the question weight and p_i the selected option's
// partial credit percentage. Attempts whose questions carry no weight
// at all score zero rather than dividing by zero.
func Calificar(respuestas []Respuesta) float64 {
	var pesoTotal, logrado float64
	for _, r := range respuestas {
		pesoTotal += r.PorcentajePregunta
		logrado += r.PorcentajePregunta * r.PorcentajeParcial / 100
	}
	if pesoTotal == 0 {
		return 0
	}
	return EscalaMaxima * logrado / pesoTotal
}
