package entity

type Categoria string

const (
	CategoriaClinica      Categoria = "clinica"
	CategoriaHospital     Categoria = "hospital"
	CategoriaPetshop      Categoria = "petshop"
	CategoriaAgropecuaria Categoria = "agropecuaria"
	CategoriaLaboratorio  Categoria = "laboratorio"
	CategoriaOutro        Categoria = "outro"
)

type PoliticaConcorrencia string

const (
	// PoliticaExclusivoNosso marks an establishment that only works with us.
	PoliticaExclusivoNosso PoliticaConcorrencia = "exclusivo_nosso"

	// PoliticaExclusivoConcorrente marks an establishment locked to a competitor.
	PoliticaExclusivoConcorrente PoliticaConcorrencia = "exclusivo_concorrente"

	PoliticaAberto   PoliticaConcorrencia = "aberto"
	PoliticaSeletivo PoliticaConcorrencia = "seletivo"
	PoliticaNenhuma  PoliticaConcorrencia = "nenhuma"
)

const (
	// RelacionamentoMin is the "unscored/new" state, not a real rating.
	RelacionamentoMin = 0
	RelacionamentoMax = 5
)

// Estabelecimento is the central sales-target entity: a veterinary clinic,
// hospital, pet shop, feed store or lab worked by the sales team.
//
// Latitude/Longitude are nullable on purpose: records without coordinates
// stay visible on lists but cannot be plotted by map clients.
type Estabelecimento struct {
	ID        int64  `gorm:"primaryKey"`
	UnidadeID int64  `gorm:"not null;index"` // tenant scope, every query filters on it
	Nome      string `gorm:"not null"`

	Categoria Categoria `gorm:"not null;default:outro"`
	Endereco  string
	Bairro    string
	Cidade    string `gorm:"index"`
	Estado    string
	CEP       string
	Telefone  string
	Email     string
	Website   string
	Instagram string

	HorarioFuncionamento string
	FotoURL              string
	GooglePlaceID        string
	Observacoes          string

	Latitude  *float64
	Longitude *float64

	// Relacionamento is the 0-5 star score. 0 means unscored; it only ever
	// changes by explicit user action, there is no automatic decay.
	Relacionamento int `gorm:"not null;default:0"`

	// Commercial intelligence
	TamanhoEquipe         string
	VeterinariosFixos     int
	VeterinariosVolantes  int
	LocaisDivulgacao      string `gorm:"type:text"` // space-separated tags
	PoliticaConcorrencia  PoliticaConcorrencia
	ConcorrentesPresentes string `gorm:"type:text"` // space-separated tags
	MediaObitosMes        *float64
	PercentualPrefeitura  *float64
	TaxaPrefeitura10kg    *float64
	ModeloGratificacao    string
	EstrategiaAbordagem   string

	// UltimaVisita is the epoch millis of the most recent visit, nil when the
	// establishment was never visited.
	UltimaVisita *int64

	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`

	// Relationships
	Visitas  []*Visita  `gorm:"foreignKey:EstabelecimentoID;constraint:OnDelete:CASCADE;"`
	Contatos []*Contato `gorm:"foreignKey:EstabelecimentoID;constraint:OnDelete:CASCADE;"`
}

// TemCoordenadas reports whether the record can be plotted on a map.
func (e *Estabelecimento) TemCoordenadas() bool {
	return e.Latitude != nil && e.Longitude != nil
}
