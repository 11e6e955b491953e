package repository

import (
	"errors"

	"gorm.io/gorm"

	"vetcrm/internal/domain/entity"
)

type DefaultContatoRepository struct {
	db *gorm.DB
}

func NewContatoRepository(db *gorm.DB) *DefaultContatoRepository {
	return &DefaultContatoRepository{db: db}
}

func (r *DefaultContatoRepository) FindAllByEstabelecimento(unidadeID, estabelecimentoID int64) ([]*entity.Contato, error) {
	var contatos []*entity.Contato
	err := r.db.
		Where("unidade_id = ? AND estabelecimento_id = ?", unidadeID, estabelecimentoID).
		Order("nome ASC").
		Find(&contatos).Error
	if err != nil {
		return nil, err
	}
	return contatos, nil
}

func (r *DefaultContatoRepository) FindByID(unidadeID, id int64) (*entity.Contato, error) {
	var contato entity.Contato
	err := r.db.
		Where("unidade_id = ?", unidadeID).
		First(&contato, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &contato, nil
}

func (r *DefaultContatoRepository) Save(contato *entity.Contato) error {
	return r.db.Save(contato).Error
}

func (r *DefaultContatoRepository) Delete(contato *entity.Contato) error {
	return r.db.Delete(contato).Error
}
