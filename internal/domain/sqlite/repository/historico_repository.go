package repository

import (
	"gorm.io/gorm"

	"vetcrm/internal/domain/entity"
)

type DefaultHistoricoRepository struct {
	db *gorm.DB
}

func NewHistoricoRepository(db *gorm.DB) *DefaultHistoricoRepository {
	return &DefaultHistoricoRepository{db: db}
}

func (r *DefaultHistoricoRepository) FindAllByEstabelecimento(unidadeID, estabelecimentoID int64) ([]*entity.Historico, error) {
	var entries []*entity.Historico
	err := r.db.
		Where("unidade_id = ? AND estabelecimento_id = ?", unidadeID, estabelecimentoID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Append inserts a history entry. There is no update or delete path: the
// table is append-only by contract.
func (r *DefaultHistoricoRepository) Append(entry *entity.Historico) error {
	return r.db.Create(entry).Error
}
