package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vetcrm/internal/domain/entity"
	"vetcrm/internal/infrastructure/googleplaces"
)

func lookupUser() *entity.User {
	return &entity.User{ID: 1, UnidadeID: 10, Permissions: entity.PermissionPerformLookup}
}

func TestPlacesSearchRequiresPermission(t *testing.T) {
	svc := NewPlacesService(&MockPlacesClient{}, &MockPlaceCacheRepository{})

	user := &entity.User{ID: 1, Permissions: entity.PermissionRegisterVisitas}
	_, apierr := svc.Search(user, "clínica veterinária", "Santos")
	assert.NotNil(t, apierr)
	assert.Equal(t, 403, apierr.Code())
}

func TestPlacesSearchDisabledWithoutClient(t *testing.T) {
	svc := NewPlacesService(nil, &MockPlaceCacheRepository{})

	_, apierr := svc.Search(lookupUser(), "clínica", "")
	assert.NotNil(t, apierr)
	assert.Equal(t, 503, apierr.Code())
}

func TestPlacesSearchMapsSuggestions(t *testing.T) {
	rating := 4.6
	client := &MockPlacesClient{
		TextSearchFunc: func(ctx context.Context, query, cidade string) ([]*googleplaces.Sugestao, error) {
			assert.Equal(t, "clínica", query)
			assert.Equal(t, "Santos", cidade)
			return []*googleplaces.Sugestao{{
				PlaceID: "abc123",
				Nome:    "Clínica Vet Santos",
				Cidade:  "Santos",
				Estado:  "SP",
				Rating:  &rating,
			}}, nil
		},
	}
	svc := NewPlacesService(client, &MockPlaceCacheRepository{})

	results, apierr := svc.Search(lookupUser(), "clínica", "Santos")
	assert.Nil(t, apierr)
	assert.Len(t, results, 1)
	assert.Equal(t, "abc123", results[0].PlaceID)
	assert.Equal(t, &rating, results[0].Rating)
	assert.NotNil(t, results[0].Tipos, "tipos must serialize as [] not null")
}

func TestPlacesSearchUpstreamStatusError(t *testing.T) {
	client := &MockPlacesClient{
		TextSearchFunc: func(ctx context.Context, query, cidade string) ([]*googleplaces.Sugestao, error) {
			return nil, &googleplaces.StatusError{Status: "OVER_QUERY_LIMIT"}
		},
	}
	svc := NewPlacesService(client, &MockPlaceCacheRepository{})

	_, apierr := svc.Search(lookupUser(), "clínica", "")
	assert.NotNil(t, apierr)
	assert.Equal(t, 502, apierr.Code())
}

func TestPlacesDetailsCachesFirstLookup(t *testing.T) {
	client := &MockPlacesClient{
		DetailsFunc: func(ctx context.Context, placeID string) (*googleplaces.Sugestao, error) {
			return &googleplaces.Sugestao{PlaceID: placeID, Nome: "Clínica Vet"}, nil
		},
	}
	cacheRepo := &MockPlaceCacheRepository{}
	svc := NewPlacesService(client, cacheRepo)

	details, apierr := svc.Details(lookupUser(), "abc123")
	assert.Nil(t, apierr)
	assert.False(t, details.Cached)
	assert.Equal(t, 1, client.DetailsCallCount)

	assert.Len(t, cacheRepo.Saved, 1)
	assert.True(t, cacheRepo.Saved[0].Found)
	assert.Equal(t, "abc123", cacheRepo.Saved[0].PlaceID)
}

func TestPlacesDetailsServedFromCache(t *testing.T) {
	client := &MockPlacesClient{}
	cacheRepo := &MockPlaceCacheRepository{
		FindByPlaceIDFunc: func(placeID string) (*entity.PlaceCache, error) {
			return &entity.PlaceCache{PlaceID: placeID, Nome: "Clínica Vet", Found: true}, nil
		},
	}
	svc := NewPlacesService(client, cacheRepo)

	details, apierr := svc.Details(lookupUser(), "abc123")
	assert.Nil(t, apierr)
	assert.True(t, details.Cached)
	assert.Equal(t, "Clínica Vet", details.Nome)
	assert.Equal(t, 0, client.DetailsCallCount, "cache hit must not call the provider")
}

func TestPlacesDetailsNegativeCaching(t *testing.T) {
	client := &MockPlacesClient{
		DetailsFunc: func(ctx context.Context, placeID string) (*googleplaces.Sugestao, error) {
			return nil, googleplaces.ErrNotFound
		},
	}
	cacheRepo := &MockPlaceCacheRepository{}
	svc := NewPlacesService(client, cacheRepo)

	_, apierr := svc.Details(lookupUser(), "dead-id")
	assert.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())

	// The miss itself is cached.
	assert.Len(t, cacheRepo.Saved, 1)
	assert.False(t, cacheRepo.Saved[0].Found)

	// A second lookup answers from the negative entry without the provider.
	cacheRepo.FindByPlaceIDFunc = func(placeID string) (*entity.PlaceCache, error) {
		return cacheRepo.Saved[0], nil
	}
	_, apierr = svc.Details(lookupUser(), "dead-id")
	assert.Equal(t, 404, apierr.Code())
	assert.Equal(t, 1, client.DetailsCallCount)
}

func TestPlacesStreetViewNoCoverage(t *testing.T) {
	client := &MockPlacesClient{
		StreetViewURLFunc: func(ctx context.Context, lat, lng float64) (string, error) {
			return "", nil
		},
	}
	svc := NewPlacesService(client, &MockPlaceCacheRepository{})

	resp, apierr := svc.StreetView(lookupUser(), -23.96, -46.33)
	assert.Nil(t, apierr)
	assert.Nil(t, resp.URL)
}

func TestPlacesStreetViewWithCoverage(t *testing.T) {
	client := &MockPlacesClient{
		StreetViewURLFunc: func(ctx context.Context, lat, lng float64) (string, error) {
			return "https://maps.example.com/streetview?loc=-23.96,-46.33", nil
		},
	}
	svc := NewPlacesService(client, &MockPlaceCacheRepository{})

	resp, apierr := svc.StreetView(lookupUser(), -23.96, -46.33)
	assert.Nil(t, apierr)
	assert.NotNil(t, resp.URL)
}
