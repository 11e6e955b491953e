package entity

type CanalVisita string

const (
	CanalPresencial CanalVisita = "presencial"
	CanalOnline     CanalVisita = "online"
	CanalTelefone   CanalVisita = "telefone"
	CanalMensagem   CanalVisita = "mensagem"
)

type StatusVisita string

const (
	VisitaAgendada   StatusVisita = "agendada"
	VisitaRealizada  StatusVisita = "realizada"
	VisitaCancelada  StatusVisita = "cancelada"
	VisitaReagendada StatusVisita = "reagendada"
)

type Temperatura string

const (
	TemperaturaQuente Temperatura = "quente"
	TemperaturaMorno  Temperatura = "morno"
	TemperaturaFrio   Temperatura = "frio"
)

type Potencial string

const (
	PotencialAlto  Potencial = "alto"
	PotencialMedio Potencial = "medio"
	PotencialBaixo Potencial = "baixo"
)

// Visita is one logged interaction with an establishment. Edits overwrite
// fields in place, there is no versioning of past values.
type Visita struct {
	ID                int64  `gorm:"primaryKey"`
	EstabelecimentoID int64  `gorm:"not null;index"`
	UnidadeID         int64  `gorm:"not null;index"`
	UserID            *int64 // recording rep, nil for imported rows

	DataVisita int64        `gorm:"not null"` // epoch millis
	Canal      CanalVisita  `gorm:"not null;default:presencial"`
	Objetivo   string
	Status     StatusVisita `gorm:"not null;default:realizada"`

	ContatoNome  string
	ContatoCargo string

	Observacoes    string
	ProximosPassos string
	ProximoContato *int64 // suggested next contact date, epoch millis

	Temperatura    Temperatura
	Potencial      Potencial
	DuracaoMinutos int

	Latitude  *float64
	Longitude *float64

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Estabelecimento *Estabelecimento `gorm:"foreignKey:EstabelecimentoID"`
}
