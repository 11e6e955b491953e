package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
)

func repUser() *entity.User {
	return &entity.User{
		ID:          3,
		UnidadeID:   10,
		Permissions: entity.PermissionRegisterVisitas | entity.PermissionDeleteVisitas,
	}
}

func TestCreateVisitaUpdatesUltimaVisita(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Nome: "Clínica Vet"}
	dataVisita := time.Now().Add(-2 * time.Hour).UnixMilli()

	visitaRepo := &MockVisitaRepository{
		SaveFunc: func(v *entity.Visita) error {
			v.ID = 42
			return nil
		},
		FindLatestByEstabelecimentoFunc: func(unidadeID, estabelecimentoID int64) (*entity.Visita, error) {
			return &entity.Visita{ID: 42, EstabelecimentoID: 7, DataVisita: dataVisita}, nil
		},
	}
	estRepo := &MockEstabelecimentoRepository{
		FindByIDFunc: func(unidadeID, id int64) (*entity.Estabelecimento, error) {
			if id == est.ID && unidadeID == est.UnidadeID {
				return est, nil
			}
			return nil, nil
		},
	}
	svc := NewVisitaService(visitaRepo, estRepo, validator.New())

	req := &contract.VisitaRequest{
		EstabelecimentoID: 7,
		DataVisita:        dataVisita,
		Canal:             "presencial",
		Status:            "realizada",
	}

	resp, apierr := svc.CreateVisita(repUser(), req)
	assert.Nil(t, apierr)
	assert.Equal(t, int64(42), resp.ID)
	assert.NotNil(t, resp.Estabelecimento)
	assert.Equal(t, "Clínica Vet", resp.Estabelecimento.Nome)

	// The establishment's last-visit pointer was re-derived and persisted.
	assert.NotNil(t, est.UltimaVisita)
	assert.Equal(t, dataVisita, *est.UltimaVisita)
	assert.Equal(t, 1, estRepo.SaveCallCount)
}

func TestCreateVisitaUnknownEstablishment(t *testing.T) {
	estRepo := &MockEstabelecimentoRepository{
		FindByIDFunc: func(unidadeID, id int64) (*entity.Estabelecimento, error) {
			return nil, nil
		},
	}
	svc := NewVisitaService(&MockVisitaRepository{}, estRepo, validator.New())

	req := &contract.VisitaRequest{
		EstabelecimentoID: 99,
		DataVisita:        time.Now().UnixMilli(),
		Canal:             "online",
		Status:            "agendada",
	}

	_, apierr := svc.CreateVisita(repUser(), req)
	assert.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestCreateVisitaRejectsUnknownCanal(t *testing.T) {
	svc := NewVisitaService(&MockVisitaRepository{}, &MockEstabelecimentoRepository{}, validator.New())

	req := &contract.VisitaRequest{
		EstabelecimentoID: 7,
		DataVisita:        time.Now().UnixMilli(),
		Canal:             "pombo-correio",
		Status:            "realizada",
	}

	_, apierr := svc.CreateVisita(repUser(), req)
	assert.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestDeleteVisitaClearsUltimaVisitaWhenNoneRemain(t *testing.T) {
	ult := time.Now().UnixMilli()
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, UltimaVisita: &ult}

	visitaRepo := &MockVisitaRepository{
		FindByIDFunc: func(unidadeID, id int64) (*entity.Visita, error) {
			return &entity.Visita{ID: id, EstabelecimentoID: 7, UnidadeID: unidadeID}, nil
		},
		FindLatestByEstabelecimentoFunc: func(unidadeID, estabelecimentoID int64) (*entity.Visita, error) {
			// No visits left after the delete.
			return nil, nil
		},
	}
	estRepo := &MockEstabelecimentoRepository{
		FindByIDFunc: func(unidadeID, id int64) (*entity.Estabelecimento, error) {
			return est, nil
		},
	}
	svc := NewVisitaService(visitaRepo, estRepo, validator.New())

	apierr := svc.DeleteVisita(repUser(), 42)
	assert.Nil(t, apierr)
	assert.Nil(t, est.UltimaVisita)
	assert.Equal(t, 1, estRepo.SaveCallCount)
}

func TestDeleteVisitaRequiresDeletePermission(t *testing.T) {
	svc := NewVisitaService(&MockVisitaRepository{}, &MockEstabelecimentoRepository{}, validator.New())

	user := &entity.User{ID: 3, UnidadeID: 10, Permissions: entity.PermissionRegisterVisitas}
	apierr := svc.DeleteVisita(user, 42)
	assert.NotNil(t, apierr)
	assert.Equal(t, 403, apierr.Code())
}
