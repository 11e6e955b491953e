package funil

import "vetcrm/internal/domain/entity"

// Estagio is one of the five fixed relationship-pipeline stages.
type Estagio string

const (
	EstagioFrio      Estagio = "frio"
	EstagioMorno     Estagio = "morno"
	EstagioQuente    Estagio = "quente"
	EstagioParceiro  Estagio = "parceiro"
	EstagioExclusivo Estagio = "exclusivo"
)

// Estagios returns the stages in funnel order.
func Estagios() []Estagio {
	return []Estagio{EstagioFrio, EstagioMorno, EstagioQuente, EstagioParceiro, EstagioExclusivo}
}

// Rotulo is the display label used by dashboard clients.
func (e Estagio) Rotulo() string {
	switch e {
	case EstagioFrio:
		return "Frio"
	case EstagioMorno:
		return "Morno"
	case EstagioQuente:
		return "Quente"
	case EstagioParceiro:
		return "Parceiro"
	case EstagioExclusivo:
		return "Exclusivo"
	default:
		return string(e)
	}
}

// Scores returns the closed set of relationship scores the stage absorbs.
//
// "frio" takes both 0 (unscored) and 1 (rated lowest). Product treats a
// never-evaluated establishment the same as a one-star one; the funnel
// segments filter by this score set, never by a single value.
func (e Estagio) Scores() []int {
	switch e {
	case EstagioFrio:
		return []int{0, 1}
	case EstagioMorno:
		return []int{2}
	case EstagioQuente:
		return []int{3}
	case EstagioParceiro:
		return []int{4}
	case EstagioExclusivo:
		return []int{5}
	default:
		return nil
	}
}

// EstagioDoScore maps a relationship score to its pipeline stage. Every valid
// score (0-5) maps to exactly one stage, so per-stage counts always sum to
// the total establishment count.
func EstagioDoScore(score int) Estagio {
	switch score {
	case 0, 1:
		return EstagioFrio
	case 2:
		return EstagioMorno
	case 3:
		return EstagioQuente
	case 4:
		return EstagioParceiro
	default:
		return EstagioExclusivo
	}
}

// ContagemPipeline buckets the list into the five stages.
func ContagemPipeline(list []*entity.Estabelecimento) map[Estagio]int {
	counts := map[Estagio]int{
		EstagioFrio:      0,
		EstagioMorno:     0,
		EstagioQuente:    0,
		EstagioParceiro:  0,
		EstagioExclusivo: 0,
	}
	for _, e := range list {
		counts[EstagioDoScore(e.Relacionamento)]++
	}
	return counts
}
