package contract

import "vetcrm/internal/domain/funil"

// EstagioPipeline is one funnel segment. Scores is the closed score set the
// segment filters by when clicked. It is never a single value, since "frio"
// absorbs both 0 and 1.
type EstagioPipeline struct {
	ID     string `json:"id"`
	Rotulo string `json:"rotulo"`
	Scores []int  `json:"scores"`
	Total  int    `json:"total"`
}

type DashboardResponse struct {
	Resumo   funil.Resumo       `json:"resumo"`
	Pipeline []*EstagioPipeline `json:"pipeline"`
}
