package contract

type EstabelecimentoResponse struct {
	ID                   int64    `json:"id"`
	Nome                 string   `json:"nome"`
	Categoria            string   `json:"categoria"`
	Endereco             string   `json:"endereco,omitempty"`
	Bairro               string   `json:"bairro,omitempty"`
	Cidade               string   `json:"cidade,omitempty"`
	Estado               string   `json:"estado,omitempty"`
	CEP                  string   `json:"cep,omitempty"`
	Telefone             string   `json:"telefone,omitempty"`
	Email                string   `json:"email,omitempty"`
	Website              string   `json:"website,omitempty"`
	Instagram            string   `json:"instagram,omitempty"`
	HorarioFuncionamento string   `json:"horario_funcionamento,omitempty"`
	FotoURL              string   `json:"foto_url,omitempty"`
	GooglePlaceID        string   `json:"google_place_id,omitempty"`
	Observacoes          string   `json:"observacoes,omitempty"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`

	Relacionamento int    `json:"relacionamento"`
	Estagio        string `json:"estagio"`

	TamanhoEquipe         string   `json:"tamanho_equipe,omitempty"`
	VeterinariosFixos     int      `json:"veterinarios_fixos"`
	VeterinariosVolantes  int      `json:"veterinarios_volantes"`
	LocaisDivulgacao      []string `json:"locais_divulgacao"`
	PoliticaConcorrencia  string   `json:"politica_concorrencia,omitempty"`
	ConcorrentesPresentes []string `json:"concorrentes_presentes"`
	MediaObitosMes        *float64 `json:"media_obitos_mes"`
	PercentualPrefeitura  *float64 `json:"percentual_prefeitura"`
	TaxaPrefeitura10kg    *float64 `json:"taxa_prefeitura_10kg"`
	ModeloGratificacao    string   `json:"modelo_gratificacao,omitempty"`
	EstrategiaAbordagem   string   `json:"estrategia_abordagem,omitempty"`

	// UltimaVisita is RFC3339 or null; DiasDesdeVisita is null for
	// never-visited establishments (the client renders those as "new").
	UltimaVisita    *string `json:"ultima_visita"`
	DiasDesdeVisita *int    `json:"dias_desde_visita"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type EstabelecimentoRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=120"`
	Categoria string `json:"categoria" validate:"required,oneof=clinica hospital petshop agropecuaria laboratorio outro"`

	Endereco             string   `json:"endereco" validate:"omitempty,max=250"`
	Bairro               string   `json:"bairro" validate:"omitempty,max=120"`
	Cidade               string   `json:"cidade" validate:"omitempty,max=120"`
	Estado               string   `json:"estado" validate:"omitempty,len=2"`
	CEP                  string   `json:"cep" validate:"omitempty,max=10"`
	Telefone             string   `json:"telefone" validate:"omitempty,max=30"`
	Email                string   `json:"email" validate:"omitempty,email"`
	Website              string   `json:"website" validate:"omitempty,url"`
	Instagram            string   `json:"instagram" validate:"omitempty,max=120"`
	HorarioFuncionamento string   `json:"horario_funcionamento" validate:"omitempty,max=1000"`
	FotoURL              string   `json:"foto_url" validate:"omitempty,url"`
	GooglePlaceID        string   `json:"google_place_id" validate:"omitempty,max=200"`
	Observacoes          string   `json:"observacoes" validate:"omitempty,max=5000"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,longitude"`

	Relacionamento int `json:"relacionamento" validate:"min=0,max=5"`

	TamanhoEquipe         string   `json:"tamanho_equipe" validate:"omitempty,max=60"`
	VeterinariosFixos     int      `json:"veterinarios_fixos" validate:"min=0"`
	VeterinariosVolantes  int      `json:"veterinarios_volantes" validate:"min=0"`
	LocaisDivulgacao      []string `json:"locais_divulgacao" validate:"omitempty,max=30,nodupes,dive,required,max=60,nospaces"`
	PoliticaConcorrencia  string   `json:"politica_concorrencia" validate:"omitempty,oneof=exclusivo_nosso exclusivo_concorrente aberto seletivo nenhuma"`
	ConcorrentesPresentes []string `json:"concorrentes_presentes" validate:"omitempty,max=30,nodupes,dive,required,max=60,nospaces"`
	MediaObitosMes        *float64 `json:"media_obitos_mes" validate:"omitempty,min=0"`
	PercentualPrefeitura  *float64 `json:"percentual_prefeitura" validate:"omitempty,min=0,max=100"`
	TaxaPrefeitura10kg    *float64 `json:"taxa_prefeitura_10kg" validate:"omitempty,min=0"`
	ModeloGratificacao    string   `json:"modelo_gratificacao" validate:"omitempty,max=250"`
	EstrategiaAbordagem   string   `json:"estrategia_abordagem" validate:"omitempty,max=5000"`
}

type UpdateEstabelecimentoRequest struct {
	Nome      *string `json:"nome" validate:"omitempty,min=2,max=120"`
	Categoria *string `json:"categoria" validate:"omitempty,oneof=clinica hospital petshop agropecuaria laboratorio outro"`

	Endereco             *string  `json:"endereco" validate:"omitempty,max=250"`
	Bairro               *string  `json:"bairro" validate:"omitempty,max=120"`
	Cidade               *string  `json:"cidade" validate:"omitempty,max=120"`
	Estado               *string  `json:"estado" validate:"omitempty,len=2"`
	CEP                  *string  `json:"cep" validate:"omitempty,max=10"`
	Telefone             *string  `json:"telefone" validate:"omitempty,max=30"`
	Email                *string  `json:"email" validate:"omitempty,email"`
	Website              *string  `json:"website" validate:"omitempty,url"`
	Instagram            *string  `json:"instagram" validate:"omitempty,max=120"`
	HorarioFuncionamento *string  `json:"horario_funcionamento" validate:"omitempty,max=1000"`
	FotoURL              *string  `json:"foto_url" validate:"omitempty,url"`
	GooglePlaceID        *string  `json:"google_place_id" validate:"omitempty,max=200"`
	Observacoes          *string  `json:"observacoes" validate:"omitempty,max=5000"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,longitude"`

	TamanhoEquipe         *string  `json:"tamanho_equipe" validate:"omitempty,max=60"`
	VeterinariosFixos     *int     `json:"veterinarios_fixos" validate:"omitempty,min=0"`
	VeterinariosVolantes  *int     `json:"veterinarios_volantes" validate:"omitempty,min=0"`
	LocaisDivulgacao      []string `json:"locais_divulgacao" validate:"omitempty,max=30,nodupes,dive,required,max=60,nospaces"`
	PoliticaConcorrencia  *string  `json:"politica_concorrencia" validate:"omitempty,oneof=exclusivo_nosso exclusivo_concorrente aberto seletivo nenhuma"`
	ConcorrentesPresentes []string `json:"concorrentes_presentes" validate:"omitempty,max=30,nodupes,dive,required,max=60,nospaces"`
	MediaObitosMes        *float64 `json:"media_obitos_mes" validate:"omitempty,min=0"`
	PercentualPrefeitura  *float64 `json:"percentual_prefeitura" validate:"omitempty,min=0,max=100"`
	TaxaPrefeitura10kg    *float64 `json:"taxa_prefeitura_10kg" validate:"omitempty,min=0"`
	ModeloGratificacao    *string  `json:"modelo_gratificacao" validate:"omitempty,max=250"`
	EstrategiaAbordagem   *string  `json:"estrategia_abordagem" validate:"omitempty,max=5000"`
}

// RelacionamentoRequest sets the star score. The pointer distinguishes a
// missing body from an explicit 0.
type RelacionamentoRequest struct {
	Valor *int `json:"valor" validate:"required,min=0,max=5"`
}

type HistoricoResponse struct {
	ID          int64  `json:"id"`
	Campo       string `json:"campo"`
	ValorAntigo string `json:"valor_antigo,omitempty"`
	ValorNovo   string `json:"valor_novo,omitempty"`
	Tipo        string `json:"tipo"`
	Descricao   string `json:"descricao,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ContatoResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Cargo       string `json:"cargo,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ContatoRequest struct {
	Nome        string `json:"nome" validate:"required,min=2,max=120"`
	Cargo       string `json:"cargo" validate:"omitempty,max=120"`
	Telefone    string `json:"telefone" validate:"omitempty,max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	Observacoes string `json:"observacoes" validate:"omitempty,max=2000"`
}
