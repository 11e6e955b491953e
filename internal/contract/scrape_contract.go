package contract

type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ScrapeData is the best-effort extraction result. Fields the page did not
// yield are omitted entirely; the client pre-fills whatever arrived.
type ScrapeData struct {
	Nome                 string   `json:"nome,omitempty"`
	Endereco             string   `json:"endereco,omitempty"`
	FotoURL              string   `json:"fotoUrl,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	Telefone             string   `json:"telefone,omitempty"`
	Website              string   `json:"website,omitempty"`
	HorarioFuncionamento string   `json:"horarioFuncionamento,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	Cidade               string   `json:"cidade,omitempty"`
	Estado               string   `json:"estado,omitempty"`
	CEP                  string   `json:"cep,omitempty"`
}

type ScrapeResponse struct {
	Success bool        `json:"success"`
	Data    *ScrapeData `json:"data"`
}
