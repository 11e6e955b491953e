package googleplaces

import (
	"net/url"
	"regexp"
	"strings"
)

// Sugestao is the normalized shape every provider response converts into:
// a pre-fill suggestion for the establishment form. Every field is optional;
// whatever the provider did not return stays zero and the form field is left
// blank for manual completion. Nothing here is trusted without the user
// confirming it before save.
type Sugestao struct {
	PlaceID              string
	Nome                 string
	Endereco             string
	Cidade               string
	Estado               string
	CEP                  string
	Telefone             string
	Website              string
	HorarioFuncionamento string
	Latitude             *float64
	Longitude            *float64
	Rating               *float64
	TotalReviews         *int
	Tipos                []string
	FotoURL              string
}

// Raw provider shapes. All fields are optional by construction; the mapping
// into Sugestao states each fallback rule exactly once.

type textSearchResponse struct {
	Status  string      `json:"status"`
	Results []*rawPlace `json:"results"`
}

type detailsResponse struct {
	Status string   `json:"status"`
	Result rawPlace `json:"result"`
}

type streetViewMetaResponse struct {
	Status string `json:"status"`
}

type rawPlace struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Vicinity         string `json:"vicinity"`

	AddressComponents []rawAddressComponent `json:"address_components"`

	Geometry struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`

	FormattedPhone string `json:"formatted_phone_number"`
	Website        string `json:"website"`

	OpeningHours struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`

	Rating           *float64   `json:"rating"`
	UserRatingsTotal *int       `json:"user_ratings_total"`
	Types            []string   `json:"types"`
	Photos           []rawPhoto `json:"photos"`
}

type rawAddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type rawPhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// estadoRegex matches the two-letter state code in a Brazilian formatted
// address ("..., Santos - SP, 11060-001, Brasil").
var estadoRegex = regexp.MustCompile(`-\s*([A-Z]{2})\s*,`)

// ToSugestao converts a raw provider place into the internal suggestion.
// The apiKey is needed to assemble the photo URL, which the provider only
// exposes through an authenticated photo endpoint.
func (r *rawPlace) ToSugestao(apiKey string) *Sugestao {
	s := &Sugestao{
		PlaceID:      r.PlaceID,
		Nome:         r.Name,
		Endereco:     firstNonEmpty(r.FormattedAddress, r.Vicinity),
		Telefone:     r.FormattedPhone,
		Website:      r.Website,
		Latitude:     r.Geometry.Location.Lat,
		Longitude:    r.Geometry.Location.Lng,
		Rating:       r.Rating,
		TotalReviews: r.UserRatingsTotal,
		Tipos:        r.Types,
	}

	if len(r.OpeningHours.WeekdayText) > 0 {
		s.HorarioFuncionamento = strings.Join(r.OpeningHours.WeekdayText, "\n")
	}

	if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
		s.FotoURL = photoURLFor(r.Photos[0].PhotoReference, apiKey)
	}

	// City/state/zip: address components when present (details), otherwise
	// parsed heuristically out of the formatted address (text search).
	s.Cidade, s.Estado, s.CEP = r.localidade()
	return s
}

func (r *rawPlace) localidade() (cidade, estado, cep string) {
	for _, comp := range r.AddressComponents {
		switch {
		case comp.hasType("locality"), comp.hasType("administrative_area_level_2"):
			if cidade == "" {
				cidade = comp.LongName
			}
		case comp.hasType("administrative_area_level_1"):
			estado = comp.ShortName
		case comp.hasType("postal_code"):
			cep = comp.LongName
		}
	}

	if cidade != "" || r.FormattedAddress == "" {
		return cidade, estado, cep
	}

	// "R. X, 123 - Bairro, Santos - SP, 11060-001, Brasil"
	if m := estadoRegex.FindStringSubmatch(r.FormattedAddress); m != nil {
		estado = m[1]
	}

	parts := strings.Split(r.FormattedAddress, ",")
	for _, part := range parts {
		seg := strings.TrimSpace(part)
		if idx := strings.Index(seg, " - "); idx > 0 && estadoRegex.MatchString(part+",") {
			cidade = strings.TrimSpace(seg[:idx])
			break
		}
	}
	return cidade, estado, cep
}

func (c rawAddressComponent) hasType(t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

func photoURLFor(reference, apiKey string) string {
	params := url.Values{}
	params.Set("maxwidth", "800")
	params.Set("photo_reference", reference)
	params.Set("key", apiKey)
	return photoURL + "?" + params.Encode()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
