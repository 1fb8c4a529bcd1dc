package services

import (
	"context"

	"smartinclusion/internal/models/db_models"
	"smartinclusion/internal/models/response_models"
	"smartinclusion/internal/repositories"
	"smartinclusion/pkg/utils"
)

type SchemeServiceInterface interface {
	ListForNeed(ctx context.Context, need string) ([]response_models.SchemeResponse, error)
}

type SchemeService struct {
	schemeRepo repositories.SchemeRepository
}

func NewSchemeService(schemeRepo repositories.SchemeRepository) SchemeServiceInterface {
	return &SchemeService{
		schemeRepo: schemeRepo,
	}
}

// ListForNeed returns schemes applicable to the viewer's need plus the
// general ones everybody gets. An absent or "none" need means general only.
func (s *SchemeService) ListForNeed(ctx context.Context, need string) ([]response_models.SchemeResponse, error) {

	needs := []string{db_models.NeedGeneral}
	if need != "" && need != db_models.NeedNone {
		needs = []string{need, db_models.NeedGeneral}
	}

	schemes, err := s.schemeRepo.ListByNeeds(ctx, needs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SchemeResponse, 0, len(schemes))
	for i := range schemes {
		responses = append(responses, response_models.ToSchemeResponse(&schemes[i]))
	}
	return responses, nil
}
