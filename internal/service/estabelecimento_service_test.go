package service

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils/validators"
)

// testValidator registers the custom tag validators the same way main does.
func testValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nodupes", validators.NoDupes)
	_ = v.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	return v
}

func adminUser() *entity.User {
	return &entity.User{
		ID:          1,
		UnidadeID:   10,
		Permissions: entity.PermissionAdministrator,
	}
}

func newEstServiceForTest(est *entity.Estabelecimento) (*DefaultEstabelecimentoService, *MockEstabelecimentoRepository, *MockHistoricoRepository) {
	estRepo := &MockEstabelecimentoRepository{
		FindByIDFunc: func(unidadeID, id int64) (*entity.Estabelecimento, error) {
			if est != nil && est.ID == id && est.UnidadeID == unidadeID {
				return est, nil
			}
			return nil, nil
		},
	}
	histRepo := &MockHistoricoRepository{}
	return NewEstabelecimentoService(estRepo, histRepo, testValidator()), estRepo, histRepo
}

func intPtr(v int) *int { return &v }

func TestSetRelacionamentoNewScore(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Relacionamento: 1}
	svc, estRepo, histRepo := newEstServiceForTest(est)

	resp, apierr := svc.SetRelacionamento(adminUser(), 7, &contract.RelacionamentoRequest{Valor: intPtr(4)})
	assert.Nil(t, apierr)
	assert.Equal(t, 4, est.Relacionamento)
	assert.Equal(t, 1, estRepo.SaveCallCount)

	// Score went up, so the history entry is an achievement.
	assert.Len(t, histRepo.Appended, 1)
	assert.Equal(t, entity.HistoricoConquista, histRepo.Appended[0].Tipo)
	assert.Equal(t, "relacionamento", histRepo.Appended[0].Campo)
	assert.Equal(t, "1", histRepo.Appended[0].ValorAntigo)
	assert.Equal(t, "4", histRepo.Appended[0].ValorNovo)

	assert.Equal(t, 4, resp.Relacionamento)
}

func TestSetRelacionamentoToggleResetsToZero(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Relacionamento: 3}
	svc, estRepo, histRepo := newEstServiceForTest(est)

	resp, apierr := svc.SetRelacionamento(adminUser(), 7, &contract.RelacionamentoRequest{Valor: intPtr(3)})
	assert.Nil(t, apierr)
	assert.Equal(t, 0, est.Relacionamento)
	assert.Equal(t, 1, estRepo.SaveCallCount)

	// Score went down (3 -> 0), so the entry is an alert.
	assert.Len(t, histRepo.Appended, 1)
	assert.Equal(t, entity.HistoricoAlerta, histRepo.Appended[0].Tipo)

	assert.Equal(t, 0, resp.Relacionamento)
	assert.Equal(t, "frio", resp.Estagio)
}

func TestSetRelacionamentoZeroOnUnscoredIsNoop(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Relacionamento: 0}
	svc, estRepo, histRepo := newEstServiceForTest(est)

	_, apierr := svc.SetRelacionamento(adminUser(), 7, &contract.RelacionamentoRequest{Valor: intPtr(0)})
	assert.Nil(t, apierr)
	assert.Equal(t, 0, estRepo.SaveCallCount)
	assert.Empty(t, histRepo.Appended)
}

func TestSetRelacionamentoRequiresPermission(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10}
	svc, estRepo, _ := newEstServiceForTest(est)

	user := &entity.User{ID: 2, UnidadeID: 10, Permissions: entity.PermissionRegisterVisitas}
	_, apierr := svc.SetRelacionamento(user, 7, &contract.RelacionamentoRequest{Valor: intPtr(5)})
	assert.NotNil(t, apierr)
	assert.Equal(t, 403, apierr.Code())
	assert.Equal(t, 0, estRepo.SaveCallCount)
}

func TestSetRelacionamentoUnknownEstablishment(t *testing.T) {
	svc, _, _ := newEstServiceForTest(nil)

	_, apierr := svc.SetRelacionamento(adminUser(), 99, &contract.RelacionamentoRequest{Valor: intPtr(2)})
	assert.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestSetRelacionamentoOtherUnidadeIsNotFound(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 99, Relacionamento: 2}
	svc, _, _ := newEstServiceForTest(est)

	// Actor belongs to unidade 10, the establishment to 99.
	_, apierr := svc.SetRelacionamento(adminUser(), 7, &contract.RelacionamentoRequest{Valor: intPtr(5)})
	assert.NotNil(t, apierr)
	assert.Equal(t, 404, apierr.Code())
}

func TestGetEstabelecimentoResponseStage(t *testing.T) {
	ult := int64(1700000000000)
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Relacionamento: 5, UltimaVisita: &ult}
	svc, _, _ := newEstServiceForTest(est)

	resp, apierr := svc.GetEstabelecimento(adminUser(), 7)
	assert.Nil(t, apierr)
	assert.Equal(t, "exclusivo", resp.Estagio)
	assert.NotNil(t, resp.UltimaVisita)
	assert.NotNil(t, resp.DiasDesdeVisita)
}

func TestGetEstabelecimentoNeverVisitedHasNilDias(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10}
	svc, _, _ := newEstServiceForTest(est)

	resp, apierr := svc.GetEstabelecimento(adminUser(), 7)
	assert.Nil(t, apierr)
	assert.Nil(t, resp.UltimaVisita)
	assert.Nil(t, resp.DiasDesdeVisita)
}

func TestDeleteEstabelecimentoRequiresDeletePermission(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10}
	svc, _, _ := newEstServiceForTest(est)

	// Manage alone is not enough to delete.
	user := &entity.User{ID: 2, UnidadeID: 10, Permissions: entity.PermissionManageEstabelecimentos}
	apierr := svc.DeleteEstabelecimento(user, 7)
	assert.NotNil(t, apierr)
	assert.Equal(t, 403, apierr.Code())
}

func TestCreateEstabelecimentoTagsRoundTrip(t *testing.T) {
	svc := NewEstabelecimentoService(&MockEstabelecimentoRepository{}, &MockHistoricoRepository{}, testValidator())

	req := &contract.EstabelecimentoRequest{
		Nome:                  "Clínica Pata Feliz",
		Categoria:             "clinica",
		LocaisDivulgacao:      []string{"recepcao", "balcao"},
		ConcorrentesPresentes: []string{"cremapet"},
	}
	resp, apierr := svc.CreateEstabelecimento(adminUser(), req)
	assert.Nil(t, apierr)

	// Tags come back exactly as stored: one tag in, one tag out.
	assert.Equal(t, []string{"recepcao", "balcao"}, resp.LocaisDivulgacao)
	assert.Equal(t, []string{"cremapet"}, resp.ConcorrentesPresentes)
}

func TestCreateEstabelecimentoRejectsSpacedTags(t *testing.T) {
	svc := NewEstabelecimentoService(&MockEstabelecimentoRepository{}, &MockHistoricoRepository{}, testValidator())

	req := &contract.EstabelecimentoRequest{
		Nome:             "Clínica Pata Feliz",
		Categoria:        "clinica",
		LocaisDivulgacao: []string{"panfleto na recepcao"},
	}
	_, apierr := svc.CreateEstabelecimento(adminUser(), req)
	assert.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestUpdateEstabelecimentoPatchesGooglePlaceID(t *testing.T) {
	est := &entity.Estabelecimento{ID: 7, UnidadeID: 10, Nome: "Pata Feliz", GooglePlaceID: "ChIJ_errado"}
	svc, _, _ := newEstServiceForTest(est)

	placeID := "ChIJN1t_tDeuEmsR"
	resp, apierr := svc.UpdateEstabelecimento(adminUser(), 7, &contract.UpdateEstabelecimentoRequest{
		GooglePlaceID: &placeID,
	})
	assert.Nil(t, apierr)
	assert.Equal(t, placeID, est.GooglePlaceID)
	assert.Equal(t, placeID, resp.GooglePlaceID)
	assert.Equal(t, "Pata Feliz", est.Nome)
}
