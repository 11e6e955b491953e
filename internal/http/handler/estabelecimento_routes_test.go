package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/domain/funil"
	"vetcrm/internal/utils/apierror"
)

var (
	_ EstabelecimentoService = (*MockEstService)(nil)
	_ ContatoService         = (*MockContatoService)(nil)
)

type MockEstService struct {
	GetEstabelecimentosFunc func(actor *entity.User, filtro funil.Filtro) ([]*contract.EstabelecimentoResponse, apierror.ErrorResponse)
}

func (m *MockEstService) GetEstabelecimentos(actor *entity.User, filtro funil.Filtro) ([]*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	if m.GetEstabelecimentosFunc != nil {
		return m.GetEstabelecimentosFunc(actor, filtro)
	}
	return nil, nil
}

func (m *MockEstService) GetEstabelecimento(actor *entity.User, id int64) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockEstService) CreateEstabelecimento(actor *entity.User, req *contract.EstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockEstService) UpdateEstabelecimento(actor *entity.User, id int64, req *contract.UpdateEstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockEstService) SetRelacionamento(actor *entity.User, id int64, req *contract.RelacionamentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockEstService) DeleteEstabelecimento(actor *entity.User, id int64) apierror.ErrorResponse {
	return nil
}

func (m *MockEstService) GetHistorico(actor *entity.User, id int64) ([]*contract.HistoricoResponse, apierror.ErrorResponse) {
	return nil, nil
}

type MockContatoService struct{}

func (m *MockContatoService) GetContatos(actor *entity.User, estabelecimentoID int64) ([]*contract.ContatoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockContatoService) CreateContato(actor *entity.User, estabelecimentoID int64, req *contract.ContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse) {
	return nil, nil
}

func (m *MockContatoService) DeleteContato(actor *entity.User, id int64) apierror.ErrorResponse {
	return nil
}

func TestGetEstabelecimentosReadsFilterParams(t *testing.T) {
	var got funil.Filtro
	h := NewEstabelecimentoDefault(&MockEstService{
		GetEstabelecimentosFunc: func(actor *entity.User, filtro funil.Filtro) ([]*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
			got = filtro
			return []*contract.EstabelecimentoResponse{}, nil
		},
	}, &MockContatoService{})

	c, rec := testContext(http.MethodGet, "/api/estabelecimentos?q=cl%C3%ADnica&cidade=Santos&status=atrasados")
	assert.NoError(t, h.GetEstabelecimentos(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "clínica", got.Texto)
	assert.Equal(t, funil.CidadeEspecifica{Nome: "Santos"}, got.Regiao)
	assert.Equal(t, funil.StatusAtrasados, got.Status)
}

func TestGetEstabelecimentosUnknownStatusIsBadRequest(t *testing.T) {
	h := NewEstabelecimentoDefault(&MockEstService{}, &MockContatoService{})

	c, rec := testContext(http.MethodGet, "/api/estabelecimentos?status=frio")
	assert.NoError(t, h.GetEstabelecimentos(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
