package repositories

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"smartinclusion/internal/models/db_models"
)

type SchemeRepository interface {
	ListByNeeds(ctx context.Context, needs []string) ([]db_models.Scheme, error)
}

type schemeRepository struct {
	db *gorm.DB
}

func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{db: db}
}

// ListByNeeds matches schemes whose applicable_needs overlaps the given set
// (postgres array && operator).
func (r *schemeRepository) ListByNeeds(ctx context.Context, needs []string) ([]db_models.Scheme, error) {
	var schemes []db_models.Scheme
	err := r.db.WithContext(ctx).
		Where("applicable_needs && ?", pq.Array(needs)).
		Order("title ASC").
		Find(&schemes).Error

	if err != nil {
		return nil, err
	}
	return schemes, nil
}
