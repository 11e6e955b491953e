package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Clínica Veterinária Amor Animal - Google Maps</title>
<meta property="og:title" content="Clínica Veterinária Amor Animal - Google Maps">
<meta property="og:image" content="https://lh5.example.com/p/foto123=w600">
<meta property="og:description" content="R. Carvalho de Mendonça, 247 - Vila Belmiro, Santos - SP, 11070-101">
</head>
<body>
<a href="tel:(13) 3232-1010">Ligar</a>
<script>var data = {"ratingValue": "4,8", "latitude": -23.9542, "longitude": -46.3312};</script>
</body>
</html>`

func TestExtrairSamplePage(t *testing.T) {
	r := Extrair(samplePage, "https://maps.example.com/place/x")

	assert.Equal(t, "Clínica Veterinária Amor Animal", r.Nome, "provider suffix must be stripped")
	assert.Equal(t, "R. Carvalho de Mendonça, 247 - Vila Belmiro, Santos - SP, 11070-101", r.Endereco)
	assert.Equal(t, "https://lh5.example.com/p/foto123=w600", r.FotoURL)
	assert.Equal(t, "(13) 3232-1010", r.Telefone)
	assert.Equal(t, "Santos", r.Cidade)
	assert.Equal(t, "SP", r.Estado)
	assert.Equal(t, "11070-101", r.CEP)

	assert.NotNil(t, r.Rating)
	assert.Equal(t, 4.8, *r.Rating)

	assert.NotNil(t, r.Latitude)
	assert.Equal(t, -23.9542, *r.Latitude)
	assert.NotNil(t, r.Longitude)
	assert.Equal(t, -46.3312, *r.Longitude)
}

func TestExtrairCoordinatesPreferPageURL(t *testing.T) {
	doc := `<html><script>{"latitude": -10.0, "longitude": -20.0}</script></html>`
	r := Extrair(doc, "https://maps.example.com/@-23.9618,-46.3322,17z/data=x")

	assert.Equal(t, -23.9618, *r.Latitude)
	assert.Equal(t, -46.3322, *r.Longitude)
}

func TestExtrairArbitraryHTMLNeverFails(t *testing.T) {
	for _, doc := range []string{
		"",
		"<html><body>nothing here</body></html>",
		"<<<< not even html >>>>",
	} {
		r := Extrair(doc, "https://example.com")
		assert.NotNil(t, r)
		assert.Empty(t, r.Nome)
		assert.Nil(t, r.Rating)
		assert.Nil(t, r.Latitude)
	}
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, 4.8, *parseRating("4,8"))
	assert.Equal(t, 3.5, *parseRating("3.5"))
	assert.Nil(t, parseRating("9.9"))
	assert.Nil(t, parseRating("abc"))
}

func TestCidadeEstadoDoEndereco(t *testing.T) {
	cidade, estado := cidadeEstadoDoEndereco("R. X, 123 - Centro, São Vicente - SP, 11310-000")
	assert.Equal(t, "São Vicente", cidade)
	assert.Equal(t, "SP", estado)

	cidade, estado = cidadeEstadoDoEndereco("somewhere without pattern")
	assert.Empty(t, cidade)
	assert.Empty(t, estado)
}

func TestScrapeRejectsInvalidURLs(t *testing.T) {
	s := New()

	for _, raw := range []string{"", "not a url", "ftp://example.com/x", "javascript:alert(1)"} {
		_, err := s.Scrape(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidURL, "url %q", raw)
	}
}

func TestScrapeFetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	r, err := New().Scrape(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, "Clínica Veterinária Amor Animal", r.Nome)
}

func TestScrapeNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
}
