package repository

import (
	"errors"

	"gorm.io/gorm"

	"vetcrm/internal/domain/entity"
)

type DefaultEstabelecimentoRepository struct {
	db *gorm.DB
}

func NewEstabelecimentoRepository(db *gorm.DB) *DefaultEstabelecimentoRepository {
	return &DefaultEstabelecimentoRepository{db: db}
}

// FindAllByUnidade returns every establishment of the unidade, newest first.
func (r *DefaultEstabelecimentoRepository) FindAllByUnidade(unidadeID int64) ([]*entity.Estabelecimento, error) {
	var list []*entity.Estabelecimento
	err := r.db.
		Where("unidade_id = ?", unidadeID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DefaultEstabelecimentoRepository) FindByID(unidadeID, id int64) (*entity.Estabelecimento, error) {
	var est entity.Estabelecimento
	err := r.db.
		Where("unidade_id = ?", unidadeID).
		First(&est, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *DefaultEstabelecimentoRepository) Save(est *entity.Estabelecimento) error {
	return r.db.Save(est).Error
}

// Delete removes the establishment row. Visits and contacts go with it via
// the FK cascade declared on the entity.
func (r *DefaultEstabelecimentoRepository) Delete(est *entity.Estabelecimento) error {
	return r.db.Select("Visitas", "Contatos").Delete(est).Error
}
