package entity

type TipoHistorico string

const (
	HistoricoConquista TipoHistorico = "conquista"
	HistoricoAlerta    TipoHistorico = "alerta"
	HistoricoNeutro    TipoHistorico = "neutro"
)

// Historico is an append-only record of a tracked field change on an
// establishment. Rows are only ever inserted, never updated or deleted
// through the API.
type Historico struct {
	ID                int64 `gorm:"primaryKey"`
	EstabelecimentoID int64 `gorm:"not null;index"`
	UnidadeID         int64 `gorm:"not null;index"`

	Campo       string        `gorm:"not null"`
	ValorAntigo string
	ValorNovo   string
	Tipo        TipoHistorico `gorm:"not null;default:neutro"`
	Descricao   string

	CreatedAt int64 `gorm:"not null"`
}
