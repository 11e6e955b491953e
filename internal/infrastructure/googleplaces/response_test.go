package googleplaces

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const rawDetailsJSON = `{
	"place_id": "ChIJabc123",
	"name": "Hospital Veterinário Santos",
	"formatted_address": "Av. Ana Costa, 450 - Gonzaga, Santos - SP, 11060-001, Brasil",
	"address_components": [
		{"long_name": "Santos", "short_name": "Santos", "types": ["locality", "political"]},
		{"long_name": "São Paulo", "short_name": "SP", "types": ["administrative_area_level_1", "political"]},
		{"long_name": "11060-001", "short_name": "11060-001", "types": ["postal_code"]}
	],
	"geometry": {"location": {"lat": -23.9653, "lng": -46.3322}},
	"formatted_phone_number": "(13) 3284-5000",
	"website": "https://hospvetsantos.com.br",
	"opening_hours": {"weekday_text": ["segunda-feira: 24 horas", "terça-feira: 24 horas"]},
	"rating": 4.7,
	"user_ratings_total": 230,
	"types": ["veterinary_care", "point_of_interest"],
	"photos": [{"photo_reference": "ref-abc"}]
}`

func TestToSugestaoFromDetails(t *testing.T) {
	var raw rawPlace
	assert.NoError(t, json.Unmarshal([]byte(rawDetailsJSON), &raw))

	s := raw.ToSugestao("test-key")
	assert.Equal(t, "ChIJabc123", s.PlaceID)
	assert.Equal(t, "Hospital Veterinário Santos", s.Nome)
	assert.Equal(t, "Av. Ana Costa, 450 - Gonzaga, Santos - SP, 11060-001, Brasil", s.Endereco)

	// Address components win over the formatted-address heuristic.
	assert.Equal(t, "Santos", s.Cidade)
	assert.Equal(t, "SP", s.Estado)
	assert.Equal(t, "11060-001", s.CEP)

	assert.Equal(t, "(13) 3284-5000", s.Telefone)
	assert.Equal(t, "segunda-feira: 24 horas\nterça-feira: 24 horas", s.HorarioFuncionamento)
	assert.Equal(t, -23.9653, *s.Latitude)
	assert.Equal(t, -46.3322, *s.Longitude)
	assert.Equal(t, 4.7, *s.Rating)
	assert.Equal(t, 230, *s.TotalReviews)

	assert.Contains(t, s.FotoURL, "photo_reference=ref-abc")
	assert.Contains(t, s.FotoURL, "key=test-key")
}

func TestToSugestaoTextSearchFallbacks(t *testing.T) {
	// Text search results have no address components; city and state come
	// out of the formatted address.
	raw := rawPlace{
		PlaceID:          "ChIJdef456",
		Name:             "Petshop Maré",
		FormattedAddress: "R. Tolentino Filgueiras, 80 - Gonzaga, Santos - SP, 11060-470, Brasil",
	}

	s := raw.ToSugestao("key")
	assert.Equal(t, "Santos", s.Cidade)
	assert.Equal(t, "SP", s.Estado)
	assert.Empty(t, s.CEP)
	assert.Empty(t, s.FotoURL)
	assert.Nil(t, s.Rating)
}

func TestToSugestaoVicinityFallback(t *testing.T) {
	raw := rawPlace{Name: "Clínica X", Vicinity: "Av. Central, 10"}

	s := raw.ToSugestao("key")
	assert.Equal(t, "Av. Central, 10", s.Endereco)
}

func TestToSugestaoEmptyPlace(t *testing.T) {
	raw := rawPlace{}

	s := raw.ToSugestao("key")
	assert.Empty(t, s.PlaceID)
	assert.Nil(t, s.Latitude)
	assert.Empty(t, s.Cidade)
	assert.Empty(t, s.FotoURL)
}
