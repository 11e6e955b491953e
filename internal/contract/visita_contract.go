package contract

// EstabelecimentoResumo is the joined summary embedded in visit responses.
type EstabelecimentoResumo struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Cidade string `json:"cidade,omitempty"`
}

type VisitaResponse struct {
	ID                int64                  `json:"id"`
	EstabelecimentoID int64                  `json:"estabelecimento_id"`
	Estabelecimento   *EstabelecimentoResumo `json:"estabelecimento,omitempty"`

	DataVisita string `json:"data_visita"`
	Canal      string `json:"canal"`
	Objetivo   string `json:"objetivo,omitempty"`
	Status     string `json:"status"`

	ContatoNome  string `json:"contato_nome,omitempty"`
	ContatoCargo string `json:"contato_cargo,omitempty"`

	Observacoes    string  `json:"observacoes,omitempty"`
	ProximosPassos string  `json:"proximos_passos,omitempty"`
	ProximoContato *string `json:"proximo_contato"`

	Temperatura    string `json:"temperatura,omitempty"`
	Potencial      string `json:"potencial,omitempty"`
	DuracaoMinutos int    `json:"duracao_minutos,omitempty"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// VisitaRequest creates a visit. DataVisita and ProximoContato are epoch
// millis, matching how timestamps travel everywhere else in the API.
type VisitaRequest struct {
	EstabelecimentoID int64 `json:"estabelecimento_id" validate:"required,min=1"`

	DataVisita int64  `json:"data_visita" validate:"required,min=1"`
	Canal      string `json:"canal" validate:"required,oneof=presencial online telefone mensagem"`
	Objetivo   string `json:"objetivo" validate:"omitempty,max=250"`
	Status     string `json:"status" validate:"required,oneof=agendada realizada cancelada reagendada"`

	ContatoNome  string `json:"contato_nome" validate:"omitempty,max=120"`
	ContatoCargo string `json:"contato_cargo" validate:"omitempty,max=120"`

	Observacoes    string `json:"observacoes" validate:"omitempty,max=5000"`
	ProximosPassos string `json:"proximos_passos" validate:"omitempty,max=2000"`
	ProximoContato *int64 `json:"proximo_contato" validate:"omitempty,min=1"`

	Temperatura    string `json:"temperatura" validate:"omitempty,oneof=quente morno frio"`
	Potencial      string `json:"potencial" validate:"omitempty,oneof=alto medio baixo"`
	DuracaoMinutos int    `json:"duracao_minutos" validate:"omitempty,min=0,max=1440"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type UpdateVisitaRequest struct {
	DataVisita *int64  `json:"data_visita" validate:"omitempty,min=1"`
	Canal      *string `json:"canal" validate:"omitempty,oneof=presencial online telefone mensagem"`
	Objetivo   *string `json:"objetivo" validate:"omitempty,max=250"`
	Status     *string `json:"status" validate:"omitempty,oneof=agendada realizada cancelada reagendada"`

	ContatoNome  *string `json:"contato_nome" validate:"omitempty,max=120"`
	ContatoCargo *string `json:"contato_cargo" validate:"omitempty,max=120"`

	Observacoes    *string `json:"observacoes" validate:"omitempty,max=5000"`
	ProximosPassos *string `json:"proximos_passos" validate:"omitempty,max=2000"`
	ProximoContato *int64  `json:"proximo_contato" validate:"omitempty,min=1"`

	Temperatura    *string `json:"temperatura" validate:"omitempty,oneof=quente morno frio"`
	Potencial      *string `json:"potencial" validate:"omitempty,oneof=alto medio baixo"`
	DuracaoMinutos *int    `json:"duracao_minutos" validate:"omitempty,min=0,max=1440"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}
