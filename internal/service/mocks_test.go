package service

import (
	"context"
	"errors"

	"vetcrm/internal/domain/entity"
	"vetcrm/internal/infrastructure/aws/storage"
	"vetcrm/internal/infrastructure/googleplaces"
)

// Compile-time checks that the mocks satisfy the service contracts.
var (
	_ EstabelecimentoRepository = (*MockEstabelecimentoRepository)(nil)
	_ HistoricoRepository       = (*MockHistoricoRepository)(nil)
	_ VisitaRepository          = (*MockVisitaRepository)(nil)
	_ PlaceCacheRepository      = (*MockPlaceCacheRepository)(nil)
	_ PlacesClient              = (*MockPlacesClient)(nil)
	_ storage.S3Client          = (*MockS3Client)(nil)
)

type MockEstabelecimentoRepository struct {
	FindAllByUnidadeFunc func(unidadeID int64) ([]*entity.Estabelecimento, error)
	FindByIDFunc         func(unidadeID, id int64) (*entity.Estabelecimento, error)
	SaveFunc             func(est *entity.Estabelecimento) error
	DeleteFunc           func(est *entity.Estabelecimento) error

	SaveCallCount int
}

func (m *MockEstabelecimentoRepository) FindAllByUnidade(unidadeID int64) ([]*entity.Estabelecimento, error) {
	if m.FindAllByUnidadeFunc != nil {
		return m.FindAllByUnidadeFunc(unidadeID)
	}
	return nil, nil
}

func (m *MockEstabelecimentoRepository) FindByID(unidadeID, id int64) (*entity.Estabelecimento, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(unidadeID, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockEstabelecimentoRepository) Save(est *entity.Estabelecimento) error {
	m.SaveCallCount++
	if m.SaveFunc != nil {
		return m.SaveFunc(est)
	}
	return nil
}

func (m *MockEstabelecimentoRepository) Delete(est *entity.Estabelecimento) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(est)
	}
	return nil
}

type MockHistoricoRepository struct {
	FindAllByEstabelecimentoFunc func(unidadeID, estabelecimentoID int64) ([]*entity.Historico, error)
	AppendFunc                   func(entry *entity.Historico) error

	Appended []*entity.Historico
}

func (m *MockHistoricoRepository) FindAllByEstabelecimento(unidadeID, estabelecimentoID int64) ([]*entity.Historico, error) {
	if m.FindAllByEstabelecimentoFunc != nil {
		return m.FindAllByEstabelecimentoFunc(unidadeID, estabelecimentoID)
	}
	return nil, nil
}

func (m *MockHistoricoRepository) Append(entry *entity.Historico) error {
	m.Appended = append(m.Appended, entry)
	if m.AppendFunc != nil {
		return m.AppendFunc(entry)
	}
	return nil
}

type MockVisitaRepository struct {
	FindAllByUnidadeFunc            func(unidadeID, estabelecimentoID int64) ([]*entity.Visita, error)
	FindByIDFunc                    func(unidadeID, id int64) (*entity.Visita, error)
	FindLatestByEstabelecimentoFunc func(unidadeID, estabelecimentoID int64) (*entity.Visita, error)
	SaveFunc                        func(visita *entity.Visita) error
	DeleteFunc                      func(visita *entity.Visita) error
}

func (m *MockVisitaRepository) FindAllByUnidade(unidadeID, estabelecimentoID int64) ([]*entity.Visita, error) {
	if m.FindAllByUnidadeFunc != nil {
		return m.FindAllByUnidadeFunc(unidadeID, estabelecimentoID)
	}
	return nil, nil
}

func (m *MockVisitaRepository) FindByID(unidadeID, id int64) (*entity.Visita, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(unidadeID, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockVisitaRepository) FindLatestByEstabelecimento(unidadeID, estabelecimentoID int64) (*entity.Visita, error) {
	if m.FindLatestByEstabelecimentoFunc != nil {
		return m.FindLatestByEstabelecimentoFunc(unidadeID, estabelecimentoID)
	}
	return nil, nil
}

func (m *MockVisitaRepository) Save(visita *entity.Visita) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(visita)
	}
	return nil
}

func (m *MockVisitaRepository) Delete(visita *entity.Visita) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(visita)
	}
	return nil
}

type MockPlaceCacheRepository struct {
	FindByPlaceIDFunc func(placeID string) (*entity.PlaceCache, error)
	SaveFunc          func(place *entity.PlaceCache) error

	Saved []*entity.PlaceCache
}

func (m *MockPlaceCacheRepository) FindByPlaceID(placeID string) (*entity.PlaceCache, error) {
	if m.FindByPlaceIDFunc != nil {
		return m.FindByPlaceIDFunc(placeID)
	}
	return nil, nil
}

func (m *MockPlaceCacheRepository) Save(place *entity.PlaceCache) error {
	m.Saved = append(m.Saved, place)
	if m.SaveFunc != nil {
		return m.SaveFunc(place)
	}
	return nil
}

type MockS3Client struct {
	UploadFileFunc func(data []byte, key string) (string, error)
	DeleteFileFunc func(key string) error

	Uploaded []string
	Deleted  []string
}

func (m *MockS3Client) UploadFile(data []byte, key string) (string, error) {
	m.Uploaded = append(m.Uploaded, key)
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(data, key)
	}
	return key, nil
}

func (m *MockS3Client) DeleteFile(key string) error {
	m.Deleted = append(m.Deleted, key)
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(key)
	}
	return nil
}

func (m *MockS3Client) PublicURL(key string) string {
	return "https://fotos.test.s3.sa-east-1.amazonaws.com/" + key
}

type MockPlacesClient struct {
	TextSearchFunc    func(ctx context.Context, query, cidade string) ([]*googleplaces.Sugestao, error)
	DetailsFunc       func(ctx context.Context, placeID string) (*googleplaces.Sugestao, error)
	StreetViewURLFunc func(ctx context.Context, lat, lng float64) (string, error)

	DetailsCallCount int
}

func (m *MockPlacesClient) TextSearch(ctx context.Context, query, cidade string) ([]*googleplaces.Sugestao, error) {
	if m.TextSearchFunc != nil {
		return m.TextSearchFunc(ctx, query, cidade)
	}
	return nil, nil
}

func (m *MockPlacesClient) Details(ctx context.Context, placeID string) (*googleplaces.Sugestao, error) {
	m.DetailsCallCount++
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, placeID)
	}
	return nil, errors.New("DetailsFunc not implemented in mock")
}

func (m *MockPlacesClient) StreetViewURL(ctx context.Context, lat, lng float64) (string, error) {
	if m.StreetViewURLFunc != nil {
		return m.StreetViewURLFunc(ctx, lat, lng)
	}
	return "", nil
}
