package funil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vetcrm/internal/domain/entity"
)

func TestParseRegiao(t *testing.T) {
	assert.Equal(t, TodasRegioes{}, ParseRegiao(""))
	assert.Equal(t, TodasRegioes{}, ParseRegiao("todas"))
	assert.Equal(t, OutrasRegioes{}, ParseRegiao("Outras"))
	assert.Equal(t, CidadeEspecifica{Nome: "Santos"}, ParseRegiao(" Santos "))
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("")
	assert.True(t, ok)
	assert.Equal(t, StatusTodos, status)

	status, ok = ParseStatus("Oportunidade")
	assert.True(t, ok)
	assert.Equal(t, StatusOportunidade, status)

	_, ok = ParseStatus("whatever")
	assert.False(t, ok)
}

func TestRegiaoFiltro(t *testing.T) {
	santos := &entity.Estabelecimento{Cidade: "Santos"}
	cubatao := &entity.Estabelecimento{Cidade: "Cubatão"}

	t.Run("specific city is case-insensitive", func(t *testing.T) {
		f := CidadeEspecifica{Nome: "santos"}
		assert.True(t, f.aceitaRegiao(santos))
		assert.False(t, f.aceitaRegiao(cubatao))
	})

	t.Run("outras excludes every primary city", func(t *testing.T) {
		f := OutrasRegioes{}
		assert.False(t, f.aceitaRegiao(santos))
		assert.False(t, f.aceitaRegiao(&entity.Estabelecimento{Cidade: "guarujá"}))
		assert.True(t, f.aceitaRegiao(cubatao))
	})

	// Every establishment is either in a primary city or in "outras",
	// never both, so the region buckets partition the list.
	t.Run("primary cities and outras partition", func(t *testing.T) {
		for _, e := range []*entity.Estabelecimento{santos, cubatao, {Cidade: "Praia Grande"}} {
			emPrincipal := false
			for _, cidade := range CidadesPrincipais {
				if (CidadeEspecifica{Nome: cidade}).aceitaRegiao(e) {
					emPrincipal = true
				}
			}
			assert.NotEqual(t, emPrincipal, OutrasRegioes{}.aceitaRegiao(e))
		}
	})
}

func TestFiltroAceitaTexto(t *testing.T) {
	e := &entity.Estabelecimento{
		Nome:     "Clínica Veterinária Amor Animal",
		Endereco: "Av. Ana Costa, 300",
		Cidade:   "Santos",
		Bairro:   "Gonzaga",
	}

	assert.True(t, Filtro{Texto: "clínica"}.Aceita(e, time.Now()))
	assert.True(t, Filtro{Texto: "ana costa"}.Aceita(e, time.Now()))
	assert.True(t, Filtro{Texto: "gonzaga"}.Aceita(e, time.Now()))
	assert.False(t, Filtro{Texto: "petshop"}.Aceita(e, time.Now()))
	assert.True(t, Filtro{Texto: "   "}.Aceita(e, time.Now()))
}

func TestFiltroStatusOportunidade(t *testing.T) {
	now := time.Now()
	f := Filtro{Status: StatusOportunidade}

	t.Run("no competitors and open policy matches", func(t *testing.T) {
		e := &entity.Estabelecimento{PoliticaConcorrencia: entity.PoliticaAberto}
		assert.True(t, f.Aceita(e, now))
	})

	t.Run("competitor tags disqualify", func(t *testing.T) {
		e := &entity.Estabelecimento{ConcorrentesPresentes: "cremapet"}
		assert.False(t, f.Aceita(e, now))
	})

	t.Run("locked to a competitor disqualifies even without tags", func(t *testing.T) {
		e := &entity.Estabelecimento{PoliticaConcorrencia: entity.PoliticaExclusivoConcorrente}
		assert.False(t, f.Aceita(e, now))
	})
}

func TestFiltroAxesCombineWithAnd(t *testing.T) {
	now := time.Now()
	ms := now.AddDate(0, 0, -45).UnixMilli()

	matching := &entity.Estabelecimento{
		Nome:         "Clínica Boa Vista",
		Cidade:       "Santos",
		UltimaVisita: &ms,
	}
	wrongCity := &entity.Estabelecimento{
		Nome:         "Clínica Boa Vista",
		Cidade:       "Guarujá",
		UltimaVisita: &ms,
	}
	notOverdue := &entity.Estabelecimento{
		Nome:   "Clínica Boa Vista",
		Cidade: "Santos",
	}

	f := Filtro{
		Texto:  "clínica",
		Regiao: CidadeEspecifica{Nome: "Santos"},
		Status: StatusAtrasados,
	}

	out := Aplicar([]*entity.Estabelecimento{matching, wrongCity, notOverdue}, f, now)
	assert.Equal(t, []*entity.Estabelecimento{matching}, out)
}

func TestFiltroNilRegiaoDefaultsToTodas(t *testing.T) {
	e := &entity.Estabelecimento{Nome: "Petshop", Cidade: "Cubatão"}
	assert.True(t, Filtro{}.Aceita(e, time.Now()))
}

func TestAplicarPreservesOrder(t *testing.T) {
	a := &entity.Estabelecimento{Nome: "A"}
	b := &entity.Estabelecimento{Nome: "B"}
	c := &entity.Estabelecimento{Nome: "C"}

	out := Aplicar([]*entity.Estabelecimento{a, b, c}, Filtro{}, time.Now())
	assert.Equal(t, []*entity.Estabelecimento{a, b, c}, out)
}
