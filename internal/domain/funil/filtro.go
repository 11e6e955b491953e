package funil

import (
	"strings"
	"time"

	"vetcrm/internal/domain/entity"
)

// CidadesPrincipais are the cities the region filter offers individually;
// everything else falls into the "outras" bucket.
var CidadesPrincipais = []string{"Santos", "São Vicente", "Praia Grande", "Guarujá"}

// RegiaoFiltro is the region axis of the filter. It is a closed tagged
// union (TodasRegioes, CidadeEspecifica, OutrasRegioes) so that sentinel
// values like "todas" can never be confused with a real city name.
type RegiaoFiltro interface {
	aceitaRegiao(e *entity.Estabelecimento) bool
}

// TodasRegioes matches every establishment.
type TodasRegioes struct{}

// CidadeEspecifica matches establishments in exactly one city.
type CidadeEspecifica struct {
	Nome string
}

// OutrasRegioes matches establishments outside all primary cities.
type OutrasRegioes struct{}

func (TodasRegioes) aceitaRegiao(*entity.Estabelecimento) bool { return true }

func (c CidadeEspecifica) aceitaRegiao(e *entity.Estabelecimento) bool {
	return strings.EqualFold(e.Cidade, c.Nome)
}

func (OutrasRegioes) aceitaRegiao(e *entity.Estabelecimento) bool {
	for _, cidade := range CidadesPrincipais {
		if strings.EqualFold(e.Cidade, cidade) {
			return false
		}
	}
	return true
}

// ParseRegiao maps the query-string value to a region filter. "todas" (or
// empty) and "outras" are the only reserved words; anything else is taken
// literally as a city name.
func ParseRegiao(param string) RegiaoFiltro {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "", "todas":
		return TodasRegioes{}
	case "outras":
		return OutrasRegioes{}
	default:
		return CidadeEspecifica{Nome: strings.TrimSpace(param)}
	}
}

// StatusFiltro is the mutually-exclusive status axis of the filter.
type StatusFiltro string

const (
	StatusTodos          StatusFiltro = "todos"
	StatusExclusivos     StatusFiltro = "exclusivos"
	StatusSemVisita      StatusFiltro = "sem_visita"
	StatusAtrasados      StatusFiltro = "atrasados"
	StatusSemConcorrente StatusFiltro = "sem_concorrente"

	// StatusOportunidade selects establishments with no competitive exposure
	// at all: no competitor tags present AND not exclusive to a competitor.
	StatusOportunidade StatusFiltro = "oportunidade"
)

// ParseStatus returns the status filter for a query-string value; empty
// means "todos". The second return is false for unrecognized values.
func ParseStatus(param string) (StatusFiltro, bool) {
	s := StatusFiltro(strings.ToLower(strings.TrimSpace(param)))
	switch s {
	case "":
		return StatusTodos, true
	case StatusTodos, StatusExclusivos, StatusSemVisita, StatusAtrasados,
		StatusSemConcorrente, StatusOportunidade:
		return s, true
	default:
		return StatusTodos, false
	}
}

func (s StatusFiltro) aceitaStatus(e *entity.Estabelecimento, now time.Time) bool {
	switch s {
	case StatusExclusivos:
		return e.PoliticaConcorrencia == entity.PoliticaExclusivoNosso
	case StatusSemVisita:
		return e.UltimaVisita == nil
	case StatusAtrasados:
		return Atrasado(e, now)
	case StatusSemConcorrente:
		return !temConcorrentes(e)
	case StatusOportunidade:
		return !temConcorrentes(e) && e.PoliticaConcorrencia != entity.PoliticaExclusivoConcorrente
	default:
		return true
	}
}

// Filtro combines the three filter axes with AND semantics.
type Filtro struct {
	Texto  string
	Regiao RegiaoFiltro
	Status StatusFiltro
}

// Aceita evaluates the establishment against all three axes.
func (f Filtro) Aceita(e *entity.Estabelecimento, now time.Time) bool {
	if !f.aceitaTexto(e) {
		return false
	}

	regiao := f.Regiao
	if regiao == nil {
		regiao = TodasRegioes{}
	}

	if !regiao.aceitaRegiao(e) {
		return false
	}
	return f.Status.aceitaStatus(e, now)
}

// Aplicar returns the establishments matching the filter, preserving order.
func Aplicar(list []*entity.Estabelecimento, f Filtro, now time.Time) []*entity.Estabelecimento {
	out := make([]*entity.Estabelecimento, 0, len(list))
	for _, e := range list {
		if f.Aceita(e, now) {
			out = append(out, e)
		}
	}
	return out
}

// aceitaTexto is a case-insensitive substring match against name, address,
// city and neighborhood; any single field matching is enough.
func (f Filtro) aceitaTexto(e *entity.Estabelecimento) bool {
	termo := strings.ToLower(strings.TrimSpace(f.Texto))
	if termo == "" {
		return true
	}

	for _, campo := range []string{e.Nome, e.Endereco, e.Cidade, e.Bairro} {
		if strings.Contains(strings.ToLower(campo), termo) {
			return true
		}
	}
	return false
}

func temConcorrentes(e *entity.Estabelecimento) bool {
	return strings.TrimSpace(e.ConcorrentesPresentes) != ""
}
