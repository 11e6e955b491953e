package funil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vetcrm/internal/domain/entity"
)

func epochDaysAgo(now time.Time, days int) *int64 {
	ms := now.AddDate(0, 0, -days).UnixMilli()
	return &ms
}

func TestDiasDesdeVisita(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("never visited is undefined", func(t *testing.T) {
		e := &entity.Estabelecimento{}
		dias, ok := DiasDesdeVisita(e, now)
		assert.False(t, ok)
		assert.Equal(t, 0, dias)
	})

	t.Run("visited earlier today is zero days", func(t *testing.T) {
		ms := now.Add(-3 * time.Hour).UnixMilli()
		e := &entity.Estabelecimento{UltimaVisita: &ms}
		dias, ok := DiasDesdeVisita(e, now)
		assert.True(t, ok)
		assert.Equal(t, 0, dias)
	})

	t.Run("floors to whole days", func(t *testing.T) {
		ms := now.Add(-47 * time.Hour).UnixMilli()
		e := &entity.Estabelecimento{UltimaVisita: &ms}
		dias, _ := DiasDesdeVisita(e, now)
		assert.Equal(t, 1, dias)
	})

	t.Run("future visit clamps to zero", func(t *testing.T) {
		ms := now.Add(2 * time.Hour).UnixMilli()
		e := &entity.Estabelecimento{UltimaVisita: &ms}
		dias, ok := DiasDesdeVisita(e, now)
		assert.True(t, ok)
		assert.Equal(t, 0, dias)
	})
}

func TestAtrasado(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("never visited is never overdue", func(t *testing.T) {
		e := &entity.Estabelecimento{}
		assert.False(t, Atrasado(e, now))
	})

	t.Run("exactly at the limit is not overdue", func(t *testing.T) {
		e := &entity.Estabelecimento{UltimaVisita: epochDaysAgo(now, DiasLimiteAtraso)}
		assert.False(t, Atrasado(e, now))
	})

	t.Run("one day past the limit is overdue", func(t *testing.T) {
		e := &entity.Estabelecimento{UltimaVisita: epochDaysAgo(now, DiasLimiteAtraso+1)}
		assert.True(t, Atrasado(e, now))
	})

	t.Run("visited 45 days ago is overdue", func(t *testing.T) {
		e := &entity.Estabelecimento{UltimaVisita: epochDaysAgo(now, 45)}
		assert.True(t, Atrasado(e, now))
	})
}

func TestResumir(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	obitos := 12.5

	list := []*entity.Estabelecimento{
		{
			// Exclusive partner, visited recently, no competitors.
			PoliticaConcorrencia: entity.PoliticaExclusivoNosso,
			UltimaVisita:         epochDaysAgo(now, 5),
			MediaObitosMes:       &obitos,
		},
		{
			// Never visited, has competitors.
			ConcorrentesPresentes: "cremapet luto_azul",
		},
		{
			// Overdue.
			UltimaVisita:   epochDaysAgo(now, 45),
			MediaObitosMes: &obitos,
		},
	}

	r := Resumir(list, now)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.ParceirosExclusivos)
	assert.Equal(t, 1, r.SemVisita)
	assert.Equal(t, 1, r.Atrasados)
	assert.Equal(t, 2, r.SemConcorrente)
	assert.Equal(t, 25.0, r.ObitosMes)
}

// An establishment with no visits must land in SemVisita only, even though
// it might naively look "overdue forever".
func TestResumirNeverVisitedNotCountedOverdue(t *testing.T) {
	now := time.Now()
	list := []*entity.Estabelecimento{{Relacionamento: 0}}

	r := Resumir(list, now)
	assert.Equal(t, 1, r.SemVisita)
	assert.Equal(t, 0, r.Atrasados)
}

func TestResumirEmptyList(t *testing.T) {
	r := Resumir(nil, time.Now())
	assert.Equal(t, Resumo{}, r)
}
