package contract

// PlaceResult is one entry of a text-search answer, already reshaped into
// the application's field names.
type PlaceResult struct {
	PlaceID      string   `json:"placeId"`
	Nome         string   `json:"nome"`
	Endereco     string   `json:"endereco,omitempty"`
	Cidade       string   `json:"cidade,omitempty"`
	Estado       string   `json:"estado,omitempty"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Rating       *float64 `json:"rating,omitempty"`
	TotalReviews *int     `json:"totalReviews,omitempty"`
	Tipos        []string `json:"tipos"`
	Foto         string   `json:"foto,omitempty"`
}

// PlaceDetails extends PlaceResult with the fields only the details lookup
// can provide. Cached reports whether the answer came from the local cache.
type PlaceDetails struct {
	PlaceResult
	Telefone             string `json:"telefone,omitempty"`
	CEP                  string `json:"cep,omitempty"`
	HorarioFuncionamento string `json:"horarioFuncionamento,omitempty"`
	Website              string `json:"website,omitempty"`
	Cached               bool   `json:"cached"`
}

type PlaceSearchResponse struct {
	Results []*PlaceResult `json:"results"`
}

type PlaceDetailsResponse struct {
	Result *PlaceDetails `json:"result"`
}

// StreetViewResponse carries the static image URL, null when the provider
// has no coverage at the coordinate.
type StreetViewResponse struct {
	URL *string `json:"url"`
}
