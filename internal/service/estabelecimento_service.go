package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/domain/funil"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type EstabelecimentoRepository interface {
	FindAllByUnidade(unidadeID int64) ([]*entity.Estabelecimento, error)
	FindByID(unidadeID, id int64) (*entity.Estabelecimento, error)
	Save(est *entity.Estabelecimento) error
	Delete(est *entity.Estabelecimento) error
}

type HistoricoRepository interface {
	FindAllByEstabelecimento(unidadeID, estabelecimentoID int64) ([]*entity.Historico, error)
	Append(entry *entity.Historico) error
}

type DefaultEstabelecimentoService struct {
	EstRepo       EstabelecimentoRepository
	HistoricoRepo HistoricoRepository
	Validate      *validator.Validate
}

func NewEstabelecimentoService(
	estRepo EstabelecimentoRepository,
	historicoRepo HistoricoRepository,
	validate *validator.Validate,
) *DefaultEstabelecimentoService {
	return &DefaultEstabelecimentoService{
		EstRepo:       estRepo,
		HistoricoRepo: historicoRepo,
		Validate:      validate,
	}
}

// GetEstabelecimentos lists the unidade's establishments after applying the
// filter axes. Filtering happens in memory over the full list, the same
// array that feeds the card, list and map views.
func (s *DefaultEstabelecimentoService) GetEstabelecimentos(actor *entity.User, filtro funil.Filtro) ([]*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	list, err := s.EstRepo.FindAllByUnidade(actor.UnidadeID)
	if err != nil {
		log.Errorf("failed to fetch establishments: %v", err)
		return nil, apierror.InternalServerError
	}

	now := time.Now()
	filtered := funil.Aplicar(list, filtro, now)

	resp := make([]*contract.EstabelecimentoResponse, len(filtered))
	for i, est := range filtered {
		resp[i] = toEstabelecimentoResponse(est, now)
	}
	return resp, nil
}

func (s *DefaultEstabelecimentoService) GetEstabelecimento(actor *entity.User, id int64) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	est, apierr := s.fetch(actor, id)
	if apierr != nil {
		return nil, apierr
	}
	return toEstabelecimentoResponse(est, time.Now()), nil
}

func (s *DefaultEstabelecimentoService) CreateEstabelecimento(actor *entity.User, req *contract.EstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	est := &entity.Estabelecimento{
		UnidadeID:            actor.UnidadeID,
		Nome:                 req.Nome,
		Categoria:            entity.Categoria(req.Categoria),
		Endereco:             req.Endereco,
		Bairro:               req.Bairro,
		Cidade:               req.Cidade,
		Estado:               req.Estado,
		CEP:                  req.CEP,
		Telefone:             req.Telefone,
		Email:                req.Email,
		Website:              req.Website,
		Instagram:            req.Instagram,
		HorarioFuncionamento: req.HorarioFuncionamento,
		FotoURL:              req.FotoURL,
		GooglePlaceID:        req.GooglePlaceID,
		Observacoes:          req.Observacoes,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Relacionamento:       req.Relacionamento,

		TamanhoEquipe:         req.TamanhoEquipe,
		VeterinariosFixos:     req.VeterinariosFixos,
		VeterinariosVolantes:  req.VeterinariosVolantes,
		LocaisDivulgacao:      joinTags(req.LocaisDivulgacao),
		PoliticaConcorrencia:  entity.PoliticaConcorrencia(req.PoliticaConcorrencia),
		ConcorrentesPresentes: joinTags(req.ConcorrentesPresentes),
		MediaObitosMes:        req.MediaObitosMes,
		PercentualPrefeitura:  req.PercentualPrefeitura,
		TaxaPrefeitura10kg:    req.TaxaPrefeitura10kg,
		ModeloGratificacao:    req.ModeloGratificacao,
		EstrategiaAbordagem:   req.EstrategiaAbordagem,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.EstRepo.Save(est); err != nil {
		log.Errorf("failed to create establishment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toEstabelecimentoResponse(est, time.Now()), nil
}

func (s *DefaultEstabelecimentoService) UpdateEstabelecimento(actor *entity.User, id int64, req *contract.UpdateEstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	est, apierr := s.fetch(actor, id)
	if apierr != nil {
		return nil, apierr
	}

	s.aplicarPatch(est, req)

	est.UpdatedAt = utils.NowUTC()
	if err := s.EstRepo.Save(est); err != nil {
		log.Errorf("failed to update establishment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toEstabelecimentoResponse(est, time.Now()), nil
}

// SetRelacionamento applies the star-toggle rule: setting the value the
// establishment already has resets the score to 0, anything else replaces
// it. Every effective change appends a history entry.
func (s *DefaultEstabelecimentoService) SetRelacionamento(actor *entity.User, id int64, req *contract.RelacionamentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return nil, apierror.UserMissingPermsError
	}

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	valor := *req.Valor
	if valor < entity.RelacionamentoMin || valor > entity.RelacionamentoMax {
		return nil, apierror.InvalidRelacionamentoError
	}

	est, apierr := s.fetch(actor, id)
	if apierr != nil {
		return nil, apierr
	}

	anterior := est.Relacionamento
	novo := valor
	if valor == anterior {
		novo = 0
	}

	if novo != anterior {
		est.Relacionamento = novo
		est.UpdatedAt = utils.NowUTC()
		if err := s.EstRepo.Save(est); err != nil {
			log.Errorf("failed to update relationship score of %d: %v", id, err)
			return nil, apierror.InternalServerError
		}
		s.registrarMudancaScore(est, anterior, novo)
	}
	return toEstabelecimentoResponse(est, time.Now()), nil
}

func (s *DefaultEstabelecimentoService) DeleteEstabelecimento(actor *entity.User, id int64) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(entity.PermissionDeleteEstabelecimentos) {
		return apierror.UserMissingPermsError
	}

	est, apierr := s.fetch(actor, id)
	if apierr != nil {
		return apierr
	}

	if err := s.EstRepo.Delete(est); err != nil {
		log.Errorf("failed to delete establishment %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultEstabelecimentoService) GetHistorico(actor *entity.User, id int64) ([]*contract.HistoricoResponse, apierror.ErrorResponse) {
	if _, apierr := s.fetch(actor, id); apierr != nil {
		return nil, apierr
	}

	entries, err := s.HistoricoRepo.FindAllByEstabelecimento(actor.UnidadeID, id)
	if err != nil {
		log.Errorf("failed to fetch history of establishment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.HistoricoResponse, len(entries))
	for i, entry := range entries {
		resp[i] = &contract.HistoricoResponse{
			ID:          entry.ID,
			Campo:       entry.Campo,
			ValorAntigo: entry.ValorAntigo,
			ValorNovo:   entry.ValorNovo,
			Tipo:        string(entry.Tipo),
			Descricao:   entry.Descricao,
			CreatedAt:   utils.FormatEpoch(entry.CreatedAt),
		}
	}
	return resp, nil
}

func (s *DefaultEstabelecimentoService) fetch(actor *entity.User, id int64) (*entity.Estabelecimento, apierror.ErrorResponse) {
	est, err := s.EstRepo.FindByID(actor.UnidadeID, id)
	if err != nil {
		log.Errorf("failed to fetch establishment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if est == nil {
		return nil, apierror.NotFoundError
	}
	return est, nil
}

// registrarMudancaScore appends the history row for a score change. A score
// going up is an achievement, going down an alert. Failures only log: the
// score change itself already persisted.
func (s *DefaultEstabelecimentoService) registrarMudancaScore(est *entity.Estabelecimento, anterior, novo int) {
	tipo := entity.HistoricoAlerta
	if novo > anterior {
		tipo = entity.HistoricoConquista
	}

	entry := &entity.Historico{
		EstabelecimentoID: est.ID,
		UnidadeID:         est.UnidadeID,
		Campo:             "relacionamento",
		ValorAntigo:       fmt.Sprintf("%d", anterior),
		ValorNovo:         fmt.Sprintf("%d", novo),
		Tipo:              tipo,
		Descricao:         fmt.Sprintf("Relacionamento alterado de %d para %d estrelas", anterior, novo),
		CreatedAt:         utils.NowUTC(),
	}

	if err := s.HistoricoRepo.Append(entry); err != nil {
		log.Errorf("failed to append score history for establishment %d: %v", est.ID, err)
	}
}

func (s *DefaultEstabelecimentoService) aplicarPatch(est *entity.Estabelecimento, req *contract.UpdateEstabelecimentoRequest) {
	if req.Nome != nil {
		est.Nome = *req.Nome
	}
	if req.Categoria != nil {
		est.Categoria = entity.Categoria(*req.Categoria)
	}
	if req.Endereco != nil {
		est.Endereco = *req.Endereco
	}
	if req.Bairro != nil {
		est.Bairro = *req.Bairro
	}
	if req.Cidade != nil {
		est.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		est.Estado = *req.Estado
	}
	if req.CEP != nil {
		est.CEP = *req.CEP
	}
	if req.Telefone != nil {
		est.Telefone = *req.Telefone
	}
	if req.Email != nil {
		est.Email = *req.Email
	}
	if req.Website != nil {
		est.Website = *req.Website
	}
	if req.Instagram != nil {
		est.Instagram = *req.Instagram
	}
	if req.HorarioFuncionamento != nil {
		est.HorarioFuncionamento = *req.HorarioFuncionamento
	}
	if req.FotoURL != nil {
		est.FotoURL = *req.FotoURL
	}
	if req.GooglePlaceID != nil {
		est.GooglePlaceID = *req.GooglePlaceID
	}
	if req.Observacoes != nil {
		est.Observacoes = *req.Observacoes
	}
	if req.Latitude != nil {
		est.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		est.Longitude = req.Longitude
	}
	if req.TamanhoEquipe != nil {
		est.TamanhoEquipe = *req.TamanhoEquipe
	}
	if req.VeterinariosFixos != nil {
		est.VeterinariosFixos = *req.VeterinariosFixos
	}
	if req.VeterinariosVolantes != nil {
		est.VeterinariosVolantes = *req.VeterinariosVolantes
	}
	if req.LocaisDivulgacao != nil {
		est.LocaisDivulgacao = joinTags(req.LocaisDivulgacao)
	}
	if req.PoliticaConcorrencia != nil {
		est.PoliticaConcorrencia = entity.PoliticaConcorrencia(*req.PoliticaConcorrencia)
	}
	if req.ConcorrentesPresentes != nil {
		est.ConcorrentesPresentes = joinTags(req.ConcorrentesPresentes)
	}
	if req.MediaObitosMes != nil {
		est.MediaObitosMes = req.MediaObitosMes
	}
	if req.PercentualPrefeitura != nil {
		est.PercentualPrefeitura = req.PercentualPrefeitura
	}
	if req.TaxaPrefeitura10kg != nil {
		est.TaxaPrefeitura10kg = req.TaxaPrefeitura10kg
	}
	if req.ModeloGratificacao != nil {
		est.ModeloGratificacao = *req.ModeloGratificacao
	}
	if req.EstrategiaAbordagem != nil {
		est.EstrategiaAbordagem = *req.EstrategiaAbordagem
	}
}

func toEstabelecimentoResponse(est *entity.Estabelecimento, now time.Time) *contract.EstabelecimentoResponse {
	var diasPtr *int
	if dias, ok := funil.DiasDesdeVisita(est, now); ok {
		diasPtr = &dias
	}

	return &contract.EstabelecimentoResponse{
		ID:                   est.ID,
		Nome:                 est.Nome,
		Categoria:            string(est.Categoria),
		Endereco:             est.Endereco,
		Bairro:               est.Bairro,
		Cidade:               est.Cidade,
		Estado:               est.Estado,
		CEP:                  est.CEP,
		Telefone:             est.Telefone,
		Email:                est.Email,
		Website:              est.Website,
		Instagram:            est.Instagram,
		HorarioFuncionamento: est.HorarioFuncionamento,
		FotoURL:              est.FotoURL,
		GooglePlaceID:        est.GooglePlaceID,
		Observacoes:          est.Observacoes,
		Latitude:             est.Latitude,
		Longitude:            est.Longitude,

		Relacionamento: est.Relacionamento,
		Estagio:        string(funil.EstagioDoScore(est.Relacionamento)),

		TamanhoEquipe:         est.TamanhoEquipe,
		VeterinariosFixos:     est.VeterinariosFixos,
		VeterinariosVolantes:  est.VeterinariosVolantes,
		LocaisDivulgacao:      toTagsArray(est.LocaisDivulgacao),
		PoliticaConcorrencia:  string(est.PoliticaConcorrencia),
		ConcorrentesPresentes: toTagsArray(est.ConcorrentesPresentes),
		MediaObitosMes:        est.MediaObitosMes,
		PercentualPrefeitura:  est.PercentualPrefeitura,
		TaxaPrefeitura10kg:    est.TaxaPrefeitura10kg,
		ModeloGratificacao:    est.ModeloGratificacao,
		EstrategiaAbordagem:   est.EstrategiaAbordagem,

		UltimaVisita:    formatEpochPtr(est.UltimaVisita),
		DiasDesdeVisita: diasPtr,

		CreatedAt: utils.FormatEpoch(est.CreatedAt),
		UpdatedAt: utils.FormatEpoch(est.UpdatedAt),
	}
}
