// Package funil holds the derived reporting logic computed over the
// in-memory establishment list of one unidade: dashboard counters, the
// five-stage relationship pipeline and the list filter predicate.
//
// Everything here is pure: functions take the list plus an evaluation
// instant and never touch the database.
package funil

import (
	"time"

	"vetcrm/internal/domain/entity"
)

// DiasLimiteAtraso is the number of elapsed days after which an
// establishment with a known last visit counts as overdue.
const DiasLimiteAtraso = 30

// DiasDesdeVisita returns the whole wall-clock days elapsed since the last
// visit. The second return is false when the establishment was never
// visited; "days since visit" is undefined in that case and the caller must
// not treat it as overdue.
//
// The count floors elapsed time to whole 24h periods rather than crossing
// calendar-day boundaries, so a visit earlier today is always 0 days ago
// regardless of time-of-day.
func DiasDesdeVisita(e *entity.Estabelecimento, now time.Time) (int, bool) {
	if e.UltimaVisita == nil {
		return 0, false
	}

	elapsed := now.Sub(time.UnixMilli(*e.UltimaVisita))
	if elapsed < 0 {
		// Visit recorded in the future, clamp instead of going negative.
		return 0, true
	}
	return int(elapsed / (24 * time.Hour)), true
}

// Atrasado reports whether the establishment is overdue for a visit.
// Never-visited establishments are never overdue.
func Atrasado(e *entity.Estabelecimento, now time.Time) bool {
	dias, ok := DiasDesdeVisita(e, now)
	return ok && dias > DiasLimiteAtraso
}

// Resumo aggregates the dashboard counters for one unidade.
type Resumo struct {
	Total               int     `json:"total"`
	ParceirosExclusivos int     `json:"parceiros_exclusivos"`
	SemVisita           int     `json:"sem_visita"`
	Atrasados           int     `json:"atrasados"`
	SemConcorrente      int     `json:"sem_concorrente"`
	ObitosMes           float64 `json:"obitos_mes"`
}

// Resumir computes the aggregate counters over the full establishment list.
// A nil MediaObitosMes contributes 0 to the monthly-loss sum.
func Resumir(list []*entity.Estabelecimento, now time.Time) Resumo {
	r := Resumo{Total: len(list)}

	for _, e := range list {
		if e.PoliticaConcorrencia == entity.PoliticaExclusivoNosso {
			r.ParceirosExclusivos++
		}

		if e.UltimaVisita == nil {
			r.SemVisita++
		} else if Atrasado(e, now) {
			r.Atrasados++
		}

		if !temConcorrentes(e) {
			r.SemConcorrente++
		}

		if e.MediaObitosMes != nil {
			r.ObitosMes += *e.MediaObitosMes
		}
	}
	return r
}
