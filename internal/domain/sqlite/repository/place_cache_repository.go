package repository

import (
	"errors"

	"gorm.io/gorm"

	"vetcrm/internal/domain/entity"
)

type DefaultPlaceCacheRepository struct {
	db *gorm.DB
}

func NewPlaceCacheRepository(db *gorm.DB) *DefaultPlaceCacheRepository {
	return &DefaultPlaceCacheRepository{db: db}
}

func (r *DefaultPlaceCacheRepository) FindByPlaceID(placeID string) (*entity.PlaceCache, error) {
	var place entity.PlaceCache
	err := r.db.
		Where("place_id = ?", placeID).
		First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *DefaultPlaceCacheRepository) Save(place *entity.PlaceCache) error {
	return r.db.Save(place).Error
}

func (r *DefaultPlaceCacheRepository) DeleteExpired(before int64) error {
	return r.db.
		Where("cached_at < ?", before).
		Delete(&entity.PlaceCache{}).Error
}
