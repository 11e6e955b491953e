package scraper

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Each field is extracted by an ordered list of independent patterns run
// against the raw HTML; the first pattern whose capture group yields a
// non-empty value wins and the rest are skipped. A field with no match is
// simply absent from the result; partial extraction is not an error.

type campoExtractor struct {
	campo   string
	padroes []*regexp.Regexp
}

var camposTexto = []campoExtractor{
	{
		campo: "nome",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`<meta[^>]+property="og:title"[^>]+content="([^"]+)"`),
			regexp.MustCompile(`<meta[^>]+content="([^"]+)"[^>]+property="og:title"`),
			regexp.MustCompile(`<meta[^>]+name="twitter:title"[^>]+content="([^"]+)"`),
			regexp.MustCompile(`<title>([^<]+)</title>`),
		},
	},
	{
		campo: "endereco",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`"(?:address|formatted_address|endereco)"\s*:\s*"([^"]+)"`),
			regexp.MustCompile(`<meta[^>]+property="og:description"[^>]+content="([^"]*?\d{5}-?\d{3}[^"]*)"`),
			regexp.MustCompile(`itemprop="address"[^>]*>([^<]+)<`),
			regexp.MustCompile(`<meta[^>]+content="([^"]*?\d{5}-?\d{3}[^"]*)"[^>]+property="og:description"`),
		},
	},
	{
		campo: "fotoUrl",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`<meta[^>]+property="og:image"[^>]+content="(https?://[^"]+)"`),
			regexp.MustCompile(`<meta[^>]+content="(https?://[^"]+)"[^>]+property="og:image"`),
		},
	},
	{
		campo: "telefone",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`href="tel:([+\d][\d\s().-]{7,})"`),
			regexp.MustCompile(`"(?:phone|formatted_phone_number|telefone)"\s*:\s*"([^"]+)"`),
			regexp.MustCompile(`(\(\d{2}\)\s?\d{4,5}[-.\s]?\d{4})`),
		},
	},
	{
		campo: "website",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`"(?:website|url_site)"\s*:\s*"(https?://[^"]+)"`),
			regexp.MustCompile(`itemprop="url"[^>]+href="(https?://[^"]+)"`),
		},
	},
	{
		campo: "horarioFuncionamento",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`"(?:opening_hours|horario)"\s*:\s*"([^"]+)"`),
			regexp.MustCompile(`itemprop="openingHours"[^>]+content="([^"]+)"`),
		},
	},
	{
		campo: "rating",
		padroes: []*regexp.Regexp{
			regexp.MustCompile(`"ratingValue"\s*:\s*"?([0-5][.,]\d)`),
			regexp.MustCompile(`"rating"\s*:\s*([0-5][.,]\d)`),
			regexp.MustCompile(`([0-5][.,]\d)\s*(?:estrelas|stars)`),
		},
	},
}

// Coordinates come in pairs; tried in order against the page URL first
// (share links embed "@lat,lng") and then against the document body.
var coordsPadroes = []*regexp.Regexp{
	regexp.MustCompile(`@(-?\d{1,2}\.\d+),(-?\d{1,3}\.\d+)`),
	regexp.MustCompile(`!3d(-?\d{1,2}\.\d+)!4d(-?\d{1,3}\.\d+)`),
	regexp.MustCompile(`"latitude"\s*:\s*(-?\d{1,2}\.\d+)[^}]*?"longitude"\s*:\s*(-?\d{1,3}\.\d+)`),
}

var (
	tituloLixo = regexp.MustCompile(`\s*[-|–]\s*Google\s*(Maps)?\s*$`)
	estadoBR   = regexp.MustCompile(`-\s*([A-Z]{2})(?:\s*,|\s*$)`)
	cepBR      = regexp.MustCompile(`\d{5}-?\d{3}`)
)

func extrairCampos(doc string) map[string]string {
	out := make(map[string]string)
	for _, ext := range camposTexto {
		for _, padrao := range ext.padroes {
			m := padrao.FindStringSubmatch(doc)
			if m == nil {
				continue
			}

			valor := strings.TrimSpace(html.UnescapeString(m[1]))
			if valor == "" {
				continue
			}
			out[ext.campo] = valor
			break
		}
	}
	return out
}

func extrairCoordenadas(pageURL, doc string) (lat, lng *float64) {
	for _, fonte := range []string{pageURL, doc} {
		for _, padrao := range coordsPadroes {
			m := padrao.FindStringSubmatch(fonte)
			if m == nil {
				continue
			}

			la, errLa := strconv.ParseFloat(m[1], 64)
			ln, errLn := strconv.ParseFloat(m[2], 64)
			if errLa != nil || errLn != nil {
				continue
			}
			return &la, &ln
		}
	}
	return nil, nil
}

func parseRating(valor string) *float64 {
	valor = strings.ReplaceAll(valor, ",", ".")
	f, err := strconv.ParseFloat(valor, 64)
	if err != nil || f < 0 || f > 5 {
		return nil
	}
	return &f
}

func limparNome(nome string) string {
	return strings.TrimSpace(tituloLixo.ReplaceAllString(nome, ""))
}

// cidadeEstadoDoEndereco guesses city and state out of a Brazilian formatted
// address ("R. X, 123 - Bairro, Santos - SP, 11060-001").
func cidadeEstadoDoEndereco(endereco string) (cidade, estado string) {
	if m := estadoBR.FindStringSubmatch(endereco); m != nil {
		estado = m[1]
	}

	for _, part := range strings.Split(endereco, ",") {
		seg := strings.TrimSpace(part)
		idx := strings.Index(seg, " - ")
		if idx <= 0 {
			continue
		}

		resto := seg[idx+3:]
		if estado != "" && strings.HasPrefix(resto, estado) {
			cidade = strings.TrimSpace(seg[:idx])
			break
		}
	}
	return cidade, estado
}
