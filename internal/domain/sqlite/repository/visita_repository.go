package repository

import (
	"errors"

	"gorm.io/gorm"

	"vetcrm/internal/domain/entity"
)

type DefaultVisitaRepository struct {
	db *gorm.DB
}

func NewVisitaRepository(db *gorm.DB) *DefaultVisitaRepository {
	return &DefaultVisitaRepository{db: db}
}

// FindAllByUnidade lists visits of the unidade, most recent first, with the
// establishment summary preloaded. estabelecimentoID narrows to one
// establishment when > 0.
func (r *DefaultVisitaRepository) FindAllByUnidade(unidadeID, estabelecimentoID int64) ([]*entity.Visita, error) {
	q := r.db.
		Preload("Estabelecimento").
		Where("unidade_id = ?", unidadeID).
		Order("data_visita DESC")

	if estabelecimentoID > 0 {
		q = q.Where("estabelecimento_id = ?", estabelecimentoID)
	}

	var visitas []*entity.Visita
	if err := q.Find(&visitas).Error; err != nil {
		return nil, err
	}
	return visitas, nil
}

func (r *DefaultVisitaRepository) FindByID(unidadeID, id int64) (*entity.Visita, error) {
	var visita entity.Visita
	err := r.db.
		Preload("Estabelecimento").
		Where("unidade_id = ?", unidadeID).
		First(&visita, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &visita, nil
}

// FindLatestByEstabelecimento returns the most recent visit of the
// establishment, or nil when it has none left.
func (r *DefaultVisitaRepository) FindLatestByEstabelecimento(unidadeID, estabelecimentoID int64) (*entity.Visita, error) {
	var visita entity.Visita
	err := r.db.
		Where("unidade_id = ? AND estabelecimento_id = ?", unidadeID, estabelecimentoID).
		Order("data_visita DESC").
		First(&visita).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &visita, nil
}

func (r *DefaultVisitaRepository) Save(visita *entity.Visita) error {
	return r.db.Save(visita).Error
}

func (r *DefaultVisitaRepository) Delete(visita *entity.Visita) error {
	return r.db.Delete(visita).Error
}
