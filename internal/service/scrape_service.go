package service

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/infrastructure/scraper"
	"vetcrm/internal/utils/apierror"
)

type PageScraper interface {
	Scrape(ctx context.Context, rawURL string) (*scraper.Resultado, error)
}

type DefaultScrapeService struct {
	Scraper PageScraper
}

func NewScrapeService(sc PageScraper) *DefaultScrapeService {
	return &DefaultScrapeService{Scraper: sc}
}

// Scrape fetches the given page and returns whatever fields the extractors
// managed to pull out. An empty page is still a success; only fetch and
// decode failures surface as errors.
func (s *DefaultScrapeService) Scrape(actor *entity.User, rawURL string) (*contract.ScrapeResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionPerformLookup) {
		return nil, apierror.UserMissingPermsError
	}

	res, err := s.Scraper.Scrape(context.Background(), rawURL)
	if err != nil {
		if errors.Is(err, scraper.ErrInvalidURL) {
			return nil, apierror.InvalidURLError
		}

		log.Errorf("failed to scrape %s: %v", rawURL, err)
		return nil, apierror.NewUpstreamError("scrape", err.Error())
	}

	return &contract.ScrapeResponse{
		Success: true,
		Data:    toScrapeData(res),
	}, nil
}

func toScrapeData(res *scraper.Resultado) *contract.ScrapeData {
	return &contract.ScrapeData{
		Nome:                 res.Nome,
		Endereco:             res.Endereco,
		FotoURL:              res.FotoURL,
		Rating:               res.Rating,
		Telefone:             res.Telefone,
		Website:              res.Website,
		HorarioFuncionamento: res.HorarioFuncionamento,
		Latitude:             res.Latitude,
		Longitude:            res.Longitude,
		Cidade:               res.Cidade,
		Estado:               res.Estado,
		CEP:                  res.CEP,
	}
}
