package service

import (
	"time"

	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/domain/funil"
	"vetcrm/internal/utils/apierror"
)

type DefaultDashboardService struct {
	EstRepo EstabelecimentoRepository
}

func NewDashboardService(estRepo EstabelecimentoRepository) *DefaultDashboardService {
	return &DefaultDashboardService{EstRepo: estRepo}
}

// GetDashboard computes the aggregate counters and the funnel segments over
// the unidade's full establishment list.
func (s *DefaultDashboardService) GetDashboard(actor *entity.User) (*contract.DashboardResponse, apierror.ErrorResponse) {
	list, err := s.EstRepo.FindAllByUnidade(actor.UnidadeID)
	if err != nil {
		log.Errorf("failed to fetch establishments for dashboard: %v", err)
		return nil, apierror.InternalServerError
	}

	counts := funil.ContagemPipeline(list)
	pipeline := make([]*contract.EstagioPipeline, 0, len(counts))
	for _, estagio := range funil.Estagios() {
		pipeline = append(pipeline, &contract.EstagioPipeline{
			ID:     string(estagio),
			Rotulo: estagio.Rotulo(),
			Scores: estagio.Scores(),
			Total:  counts[estagio],
		})
	}

	return &contract.DashboardResponse{
		Resumo:   funil.Resumir(list, time.Now()),
		Pipeline: pipeline,
	}, nil
}
