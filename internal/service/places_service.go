package service

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/infrastructure/googleplaces"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type PlacesClient interface {
	TextSearch(ctx context.Context, query, cidade string) ([]*googleplaces.Sugestao, error)
	Details(ctx context.Context, placeID string) (*googleplaces.Sugestao, error)
	StreetViewURL(ctx context.Context, lat, lng float64) (string, error)
}

type PlaceCacheRepository interface {
	FindByPlaceID(placeID string) (*entity.PlaceCache, error)
	Save(place *entity.PlaceCache) error
}

// DefaultPlacesService proxies the places provider. Client is nil when no
// maps API key is configured; every call then degrades to an explicit
// feature-disabled error instead of crashing.
type DefaultPlacesService struct {
	Client    PlacesClient
	CacheRepo PlaceCacheRepository
}

func NewPlacesService(client PlacesClient, cacheRepo PlaceCacheRepository) *DefaultPlacesService {
	return &DefaultPlacesService{
		Client:    client,
		CacheRepo: cacheRepo,
	}
}

func (s *DefaultPlacesService) Search(actor *entity.User, query, cidade string) ([]*contract.PlaceResult, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionPerformLookup) {
		return nil, apierror.UserMissingPermsError
	}

	if s.Client == nil {
		return nil, apierror.FeatureDisabledError
	}

	sugestoes, err := s.Client.TextSearch(context.Background(), query, cidade)
	if err != nil {
		return nil, mapPlacesError(err, "search %q", query)
	}

	results := make([]*contract.PlaceResult, len(sugestoes))
	for i, sug := range sugestoes {
		results[i] = toPlaceResult(sug)
	}
	return results, nil
}

// Details resolves a place ID, preferring the local cache. Provider 404s
// are cached negatively so repeat lookups of dead IDs stay local.
func (s *DefaultPlacesService) Details(actor *entity.User, placeID string) (*contract.PlaceDetails, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionPerformLookup) {
		return nil, apierror.UserMissingPermsError
	}

	if s.Client == nil {
		return nil, apierror.FeatureDisabledError
	}

	cached, err := s.CacheRepo.FindByPlaceID(placeID)
	if err != nil {
		log.Errorf("failed to read place cache for %s: %v", placeID, err)
		return nil, apierror.InternalServerError
	}

	// If we have some kind of cache
	if cached != nil {
		if !cached.Found {
			return nil, apierror.NotFoundError
		}
		return toPlaceDetails(cacheToSugestao(cached), true), nil
	}

	// Cache miss
	sug, apierr := s.fetchDetails(placeID)
	if apierr != nil {
		return nil, apierr
	}

	if err = s.CacheRepo.Save(toPlaceCache(sug)); err != nil {
		// We have the data we need and only the cache failed, so just log.
		log.Errorf("failed to save place cache for %s: %v", placeID, err)
	}
	return toPlaceDetails(sug, false), nil
}

func (s *DefaultPlacesService) StreetView(actor *entity.User, lat, lng float64) (*contract.StreetViewResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionPerformLookup) {
		return nil, apierror.UserMissingPermsError
	}

	if s.Client == nil {
		return nil, apierror.FeatureDisabledError
	}

	imgURL, err := s.Client.StreetViewURL(context.Background(), lat, lng)
	if err != nil {
		return nil, mapPlacesError(err, "streetview at %f,%f", lat, lng)
	}

	resp := &contract.StreetViewResponse{}
	if imgURL != "" {
		resp.URL = &imgURL
	}
	return resp, nil
}

func (s *DefaultPlacesService) fetchDetails(placeID string) (*googleplaces.Sugestao, apierror.ErrorResponse) {
	sug, err := s.Client.Details(context.Background(), placeID)
	if err != nil {
		if errors.Is(err, googleplaces.ErrNotFound) {
			s.cacheNegativeResult(placeID)
			return nil, apierror.NotFoundError
		}
		return nil, mapPlacesError(err, "details %s", placeID)
	}
	return sug, nil
}

func (s *DefaultPlacesService) cacheNegativeResult(placeID string) {
	_ = s.CacheRepo.Save(&entity.PlaceCache{
		PlaceID:  placeID,
		Found:    false,
		CachedAt: utils.NowUTC(),
	})
}

func mapPlacesError(err error, format string, args ...any) apierror.ErrorResponse {
	var statusErr *googleplaces.StatusError
	if errors.As(err, &statusErr) {
		return apierror.NewUpstreamError("places", statusErr.Status)
	}

	log.Errorf("places "+format+": %v", append(args, err)...)
	return apierror.InternalServerError
}

func toPlaceResult(sug *googleplaces.Sugestao) *contract.PlaceResult {
	tipos := sug.Tipos
	if tipos == nil {
		tipos = []string{}
	}

	return &contract.PlaceResult{
		PlaceID:      sug.PlaceID,
		Nome:         sug.Nome,
		Endereco:     sug.Endereco,
		Cidade:       sug.Cidade,
		Estado:       sug.Estado,
		Latitude:     sug.Latitude,
		Longitude:    sug.Longitude,
		Rating:       sug.Rating,
		TotalReviews: sug.TotalReviews,
		Tipos:        tipos,
		Foto:         sug.FotoURL,
	}
}

func toPlaceDetails(sug *googleplaces.Sugestao, cached bool) *contract.PlaceDetails {
	return &contract.PlaceDetails{
		PlaceResult:          *toPlaceResult(sug),
		Telefone:             sug.Telefone,
		CEP:                  sug.CEP,
		HorarioFuncionamento: sug.HorarioFuncionamento,
		Website:              sug.Website,
		Cached:               cached,
	}
}

func toPlaceCache(sug *googleplaces.Sugestao) *entity.PlaceCache {
	return &entity.PlaceCache{
		PlaceID:              sug.PlaceID,
		Nome:                 sug.Nome,
		Endereco:             sug.Endereco,
		Cidade:               sug.Cidade,
		Estado:               sug.Estado,
		CEP:                  sug.CEP,
		Telefone:             sug.Telefone,
		Website:              sug.Website,
		HorarioFuncionamento: sug.HorarioFuncionamento,
		Latitude:             sug.Latitude,
		Longitude:            sug.Longitude,
		Rating:               sug.Rating,
		TotalReviews:         sug.TotalReviews,
		FotoURL:              sug.FotoURL,
		Found:                true,
		CachedAt:             utils.NowUTC(),
	}
}

func cacheToSugestao(place *entity.PlaceCache) *googleplaces.Sugestao {
	return &googleplaces.Sugestao{
		PlaceID:              place.PlaceID,
		Nome:                 place.Nome,
		Endereco:             place.Endereco,
		Cidade:               place.Cidade,
		Estado:               place.Estado,
		CEP:                  place.CEP,
		Telefone:             place.Telefone,
		Website:              place.Website,
		HorarioFuncionamento: place.HorarioFuncionamento,
		Latitude:             place.Latitude,
		Longitude:            place.Longitude,
		Rating:               place.Rating,
		TotalReviews:         place.TotalReviews,
		FotoURL:              place.FotoURL,
	}
}
