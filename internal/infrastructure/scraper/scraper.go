// Package scraper pulls establishment fields out of an externally shared
// page (typically a maps share link) on a best-effort basis. There is no
// grammar and no DOM: the contract is a fixed set of regex fallback chains,
// and the output is only ever a pre-fill suggestion the user confirms.
package scraper

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// maxBodyBytes caps how much of the fetched document we are willing to scan.
const maxBodyBytes = 2 * 1024 * 1024

var ErrInvalidURL = errors.New("invalid scrape url")

// Resultado carries whatever could be extracted; absent fields stay zero
// and are omitted from the API response.
type Resultado struct {
	Nome                 string
	Endereco             string
	FotoURL              string
	Telefone             string
	Website              string
	HorarioFuncionamento string
	Cidade               string
	Estado               string
	CEP                  string
	Rating               *float64
	Latitude             *float64
	Longitude            *float64
}

type Scraper struct {
	httpClient *http.Client
}

func New() *Scraper {
	return &Scraper{httpClient: &http.Client{}}
}

// Scrape fetches the page and runs every extractor chain over it. Fetch and
// decode problems are errors; extraction finding nothing is not.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Resultado, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Some share pages only render full metadata for browser agents.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "scrape fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("scrape fetch failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read scraped page")
	}

	// resp.Request.URL reflects the post-redirect URL, which is where share
	// links usually carry the "@lat,lng" fragment.
	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return Extrair(string(body), finalURL), nil
}

// Extrair runs the extractor chains over an already-fetched document. It
// never fails: arbitrary HTML yields an empty (or partial) Resultado.
func Extrair(doc, pageURL string) *Resultado {
	campos := extrairCampos(doc)

	r := &Resultado{
		Nome:                 limparNome(campos["nome"]),
		Endereco:             campos["endereco"],
		FotoURL:              campos["fotoUrl"],
		Telefone:             campos["telefone"],
		Website:              campos["website"],
		HorarioFuncionamento: campos["horarioFuncionamento"],
	}

	if raw, ok := campos["rating"]; ok {
		r.Rating = parseRating(raw)
	}

	r.Latitude, r.Longitude = extrairCoordenadas(pageURL, doc)

	if r.Endereco != "" {
		r.Cidade, r.Estado = cidadeEstadoDoEndereco(r.Endereco)
		r.CEP = cepBR.FindString(r.Endereco)
	}
	return r
}
