package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type ContatoRepository interface {
	FindAllByEstabelecimento(unidadeID, estabelecimentoID int64) ([]*entity.Contato, error)
	FindByID(unidadeID, id int64) (*entity.Contato, error)
	Save(contato *entity.Contato) error
	Delete(contato *entity.Contato) error
}

type DefaultContatoService struct {
	ContatoRepo ContatoRepository
	EstRepo     EstabelecimentoRepository
	Validate    *validator.Validate
}

func NewContatoService(
	contatoRepo ContatoRepository,
	estRepo EstabelecimentoRepository,
	validate *validator.Validate,
) *DefaultContatoService {
	return &DefaultContatoService{
		ContatoRepo: contatoRepo,
		EstRepo:     estRepo,
		Validate:    validate,
	}
}

func (s *DefaultContatoService) GetContatos(actor *entity.User, estabelecimentoID int64) ([]*contract.ContatoResponse, apierror.ErrorResponse) {
	if apierr := s.checkEstabelecimento(actor, estabelecimentoID); apierr != nil {
		return nil, apierr
	}

	contatos, err := s.ContatoRepo.FindAllByEstabelecimento(actor.UnidadeID, estabelecimentoID)
	if err != nil {
		log.Errorf("failed to fetch contacts of establishment %d: %v", estabelecimentoID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ContatoResponse, len(contatos))
	for i, contato := range contatos {
		resp[i] = toContatoResponse(contato)
	}
	return resp, nil
}

func (s *DefaultContatoService) CreateContato(actor *entity.User, estabelecimentoID int64, req *contract.ContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := s.checkEstabelecimento(actor, estabelecimentoID); apierr != nil {
		return nil, apierr
	}

	contato := &entity.Contato{
		EstabelecimentoID: estabelecimentoID,
		UnidadeID:         actor.UnidadeID,
		Nome:              req.Nome,
		Cargo:             req.Cargo,
		Telefone:          req.Telefone,
		Email:             req.Email,
		Observacoes:       req.Observacoes,
		CreatedAt:         utils.NowUTC(),
	}

	if err := s.ContatoRepo.Save(contato); err != nil {
		log.Errorf("failed to create contact: %v", err)
		return nil, apierror.InternalServerError
	}
	return toContatoResponse(contato), nil
}

func (s *DefaultContatoService) DeleteContato(actor *entity.User, id int64) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return apierror.UserMissingPermsError
	}

	contato, err := s.ContatoRepo.FindByID(actor.UnidadeID, id)
	if err != nil {
		log.Errorf("failed to fetch contact %d: %v", id, err)
		return apierror.InternalServerError
	}

	if contato == nil {
		return apierror.NotFoundError
	}

	if err = s.ContatoRepo.Delete(contato); err != nil {
		log.Errorf("failed to delete contact %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultContatoService) checkEstabelecimento(actor *entity.User, id int64) apierror.ErrorResponse {
	est, err := s.EstRepo.FindByID(actor.UnidadeID, id)
	if err != nil {
		log.Errorf("failed to fetch establishment %d: %v", id, err)
		return apierror.InternalServerError
	}

	if est == nil {
		return apierror.NotFoundError
	}
	return nil
}

func toContatoResponse(contato *entity.Contato) *contract.ContatoResponse {
	return &contract.ContatoResponse{
		ID:          contato.ID,
		Nome:        contato.Nome,
		Cargo:       contato.Cargo,
		Telefone:    contato.Telefone,
		Email:       contato.Email,
		Observacoes: contato.Observacoes,
		CreatedAt:   utils.FormatEpoch(contato.CreatedAt),
	}
}
