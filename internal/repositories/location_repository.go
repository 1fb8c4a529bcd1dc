package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"smartinclusion/internal/models/db_models"
)

type LocationRepository interface {
	Create(ctx context.Context, loc *db_models.Location) (uuid.UUID, error)
	Update(ctx context.Context, loc *db_models.Location) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Location, error)
	List(ctx context.Context) ([]db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *db_models.Location) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(loc).Error; err != nil {
		return uuid.Nil, err
	}
	return loc.ID, nil
}

func (r *locationRepository) Update(ctx context.Context, loc *db_models.Location) error {
	result := r.db.WithContext(ctx).Save(loc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Location{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Location, error) {
	var loc db_models.Location
	err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

// List returns every location; visibility filtering is advisory and happens
// above this layer.
func (r *locationRepository) List(ctx context.Context) ([]db_models.Location, error) {
	var locs []db_models.Location
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&locs).Error

	if err != nil {
		return nil, err
	}
	return locs, nil
}
