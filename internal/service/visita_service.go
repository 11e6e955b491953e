package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type VisitaRepository interface {
	FindAllByUnidade(unidadeID, estabelecimentoID int64) ([]*entity.Visita, error)
	FindByID(unidadeID, id int64) (*entity.Visita, error)
	FindLatestByEstabelecimento(unidadeID, estabelecimentoID int64) (*entity.Visita, error)
	Save(visita *entity.Visita) error
	Delete(visita *entity.Visita) error
}

type DefaultVisitaService struct {
	VisitaRepo VisitaRepository
	EstRepo    EstabelecimentoRepository
	Validate   *validator.Validate
}

func NewVisitaService(
	visitaRepo VisitaRepository,
	estRepo EstabelecimentoRepository,
	validate *validator.Validate,
) *DefaultVisitaService {
	return &DefaultVisitaService{
		VisitaRepo: visitaRepo,
		EstRepo:    estRepo,
		Validate:   validate,
	}
}

// GetVisitas lists the unidade's visits, optionally narrowed to one
// establishment (estabelecimentoID > 0).
func (s *DefaultVisitaService) GetVisitas(actor *entity.User, estabelecimentoID int64) ([]*contract.VisitaResponse, apierror.ErrorResponse) {
	visitas, err := s.VisitaRepo.FindAllByUnidade(actor.UnidadeID, estabelecimentoID)
	if err != nil {
		log.Errorf("failed to fetch visits: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.VisitaResponse, len(visitas))
	for i, visita := range visitas {
		resp[i] = toVisitaResponse(visita)
	}
	return resp, nil
}

func (s *DefaultVisitaService) GetVisita(actor *entity.User, id int64) (*contract.VisitaResponse, apierror.ErrorResponse) {
	visita, apierr := s.fetch(actor, id)
	if apierr != nil {
		return nil, apierr
	}
	return toVisitaResponse(visita), nil
}

func (s *DefaultVisitaService) CreateVisita(actor *entity.User, req *contract.VisitaRequest) (*contract.VisitaResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionRegisterVisitas) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	est, err := s.EstRepo.FindByID(actor.UnidadeID, req.EstabelecimentoID)
	if err != nil {
		log.Errorf("failed to fetch establishment %d: %v", req.EstabelecimentoID, err)
		return nil, apierror.InternalServerError
	}

	if est == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	userID := actor.ID
	visita := &entity.Visita{
		EstabelecimentoID: est.ID,
		UnidadeID:         actor.UnidadeID,
		UserID:            &userID,

		DataVisita: req.DataVisita,
		Canal:      entity.CanalVisita(req.Canal),
		Objetivo:   req.Objetivo,
		Status:     entity.StatusVisita(req.Status),

		ContatoNome:  req.ContatoNome,
		ContatoCargo: req.ContatoCargo,

		Observacoes:    req.Observacoes,
		ProximosPassos: req.ProximosPassos,
		ProximoContato: req.ProximoContato,

		Temperatura:    entity.Temperatura(req.Temperatura),
		Potencial:      entity.Potencial(req.Potencial),
		DuracaoMinutos: req.DuracaoMinutos,

		Latitude:  req.Latitude,
		Longitude: req.Longitude,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.VisitaRepo.Save(visita); err != nil {
		log.Errorf("failed to create visit: %v", err)
		return nil, apierror.InternalServerError
	}

	s.atualizarUltimaVisita(actor, est)

	visita.Estabelecimento = est
	return toVisitaResponse(visita), nil
}

// UpdateVisita overwrites fields in place; past values are not versioned.
func (s *DefaultVisitaService) UpdateVisita(actor *entity.User, id int64, req *contract.UpdateVisitaRequest) (*contract.VisitaResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionRegisterVisitas) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	visita, apierr := s.fetch(actor, id)
	if apierr != nil {
		return nil, apierr
	}

	if req.DataVisita != nil {
		visita.DataVisita = *req.DataVisita
	}
	if req.Canal != nil {
		visita.Canal = entity.CanalVisita(*req.Canal)
	}
	if req.Objetivo != nil {
		visita.Objetivo = *req.Objetivo
	}
	if req.Status != nil {
		visita.Status = entity.StatusVisita(*req.Status)
	}
	if req.ContatoNome != nil {
		visita.ContatoNome = *req.ContatoNome
	}
	if req.ContatoCargo != nil {
		visita.ContatoCargo = *req.ContatoCargo
	}
	if req.Observacoes != nil {
		visita.Observacoes = *req.Observacoes
	}
	if req.ProximosPassos != nil {
		visita.ProximosPassos = *req.ProximosPassos
	}
	if req.ProximoContato != nil {
		visita.ProximoContato = req.ProximoContato
	}
	if req.Temperatura != nil {
		visita.Temperatura = entity.Temperatura(*req.Temperatura)
	}
	if req.Potencial != nil {
		visita.Potencial = entity.Potencial(*req.Potencial)
	}
	if req.DuracaoMinutos != nil {
		visita.DuracaoMinutos = *req.DuracaoMinutos
	}
	if req.Latitude != nil {
		visita.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		visita.Longitude = req.Longitude
	}

	visita.UpdatedAt = utils.NowUTC()
	if err := s.VisitaRepo.Save(visita); err != nil {
		log.Errorf("failed to update visit %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if est, err := s.EstRepo.FindByID(actor.UnidadeID, visita.EstabelecimentoID); err == nil && est != nil {
		s.atualizarUltimaVisita(actor, est)
	}
	return toVisitaResponse(visita), nil
}

// DeleteVisita removes the record independently of the establishment and
// recomputes the establishment's last-visit pointer from what remains.
func (s *DefaultVisitaService) DeleteVisita(actor *entity.User, id int64) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(entity.PermissionDeleteVisitas) {
		return apierror.UserMissingPermsError
	}

	visita, apierr := s.fetch(actor, id)
	if apierr != nil {
		return apierr
	}

	if err := s.VisitaRepo.Delete(visita); err != nil {
		log.Errorf("failed to delete visit %d: %v", id, err)
		return apierror.InternalServerError
	}

	if est, err := s.EstRepo.FindByID(actor.UnidadeID, visita.EstabelecimentoID); err == nil && est != nil {
		s.atualizarUltimaVisita(actor, est)
	}
	return nil
}

func (s *DefaultVisitaService) fetch(actor *entity.User, id int64) (*entity.Visita, apierror.ErrorResponse) {
	visita, err := s.VisitaRepo.FindByID(actor.UnidadeID, id)
	if err != nil {
		log.Errorf("failed to fetch visit %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if visita == nil {
		return nil, apierror.NotFoundError
	}
	return visita, nil
}

// atualizarUltimaVisita re-derives the establishment's UltimaVisita from
// its newest remaining visit. Failures only log: the visit mutation that
// triggered this already persisted.
func (s *DefaultVisitaService) atualizarUltimaVisita(actor *entity.User, est *entity.Estabelecimento) {
	latest, err := s.VisitaRepo.FindLatestByEstabelecimento(actor.UnidadeID, est.ID)
	if err != nil {
		log.Errorf("failed to recompute last visit of establishment %d: %v", est.ID, err)
		return
	}

	var ultima *int64
	if latest != nil {
		data := latest.DataVisita
		ultima = &data
	}

	est.UltimaVisita = ultima
	est.UpdatedAt = utils.NowUTC()
	if err = s.EstRepo.Save(est); err != nil {
		log.Errorf("failed to persist last visit of establishment %d: %v", est.ID, err)
	}
}

func toVisitaResponse(visita *entity.Visita) *contract.VisitaResponse {
	var resumo *contract.EstabelecimentoResumo
	if visita.Estabelecimento != nil {
		resumo = &contract.EstabelecimentoResumo{
			ID:     visita.Estabelecimento.ID,
			Nome:   visita.Estabelecimento.Nome,
			Cidade: visita.Estabelecimento.Cidade,
		}
	}

	return &contract.VisitaResponse{
		ID:                visita.ID,
		EstabelecimentoID: visita.EstabelecimentoID,
		Estabelecimento:   resumo,

		DataVisita: utils.FormatEpoch(visita.DataVisita),
		Canal:      string(visita.Canal),
		Objetivo:   visita.Objetivo,
		Status:     string(visita.Status),

		ContatoNome:  visita.ContatoNome,
		ContatoCargo: visita.ContatoCargo,

		Observacoes:    visita.Observacoes,
		ProximosPassos: visita.ProximosPassos,
		ProximoContato: formatEpochPtr(visita.ProximoContato),

		Temperatura:    string(visita.Temperatura),
		Potencial:      string(visita.Potencial),
		DuracaoMinutos: visita.DuracaoMinutos,

		Latitude:  visita.Latitude,
		Longitude: visita.Longitude,

		CreatedAt: utils.FormatEpoch(visita.CreatedAt),
		UpdatedAt: utils.FormatEpoch(visita.UpdatedAt),
	}
}
