package services

import (
	"context"

	"github.com/google/uuid"
	"smartinclusion/internal/models/db_models"
	"smartinclusion/internal/models/request_models"
	"smartinclusion/internal/models/response_models"
	"smartinclusion/internal/repositories"
	"smartinclusion/pkg/utils"
)

type LocationServiceInterface interface {
	List(ctx context.Context) ([]response_models.LocationResponse, error)
	ListVisible(ctx context.Context, viewerNeed string) ([]response_models.LocationResponse, error)
	Create(ctx context.Context, volunteerID uuid.UUID, request request_models.CreateLocationRequest) (*response_models.LocationResponse, error)
	Update(ctx context.Context, callerID uuid.UUID, id uuid.UUID, request request_models.UpdateLocationRequest) (*response_models.LocationResponse, error)
	Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	accountRepo  repositories.AccountRepository
}

func NewLocationService(locationRepo repositories.LocationRepository, accountRepo repositories.AccountRepository) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		accountRepo:  accountRepo,
	}
}

func (s *LocationService) List(ctx context.Context) ([]response_models.LocationResponse, error) {
	locs, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LocationResponse, 0, len(locs))
	for i := range locs {
		responses = append(responses, response_models.ToLocationResponse(&locs[i]))
	}
	return responses, nil
}

func (s *LocationService) ListVisible(ctx context.Context, viewerNeed string) ([]response_models.LocationResponse, error) {
	locs, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LocationResponse, 0, len(locs))
	for i := range locs {
		if LocationVisible(locs[i], viewerNeed) {
			responses = append(responses, response_models.ToLocationResponse(&locs[i]))
		}
	}
	return responses, nil
}

func (s *LocationService) Create(ctx context.Context, volunteerID uuid.UUID, request request_models.CreateLocationRequest) (*response_models.LocationResponse, error) {

	// AddedBy must reference an existing volunteer account; the id comes
	// from the verified token, never the request body.
	volunteer, err := s.accountRepo.FindByIDAndRole(ctx, volunteerID, db_models.RoleVolunteer)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if volunteer == nil {
		return nil, utils.ErrForbidden
	}

	loc := &db_models.Location{
		Name:               request.Name,
		Address:            request.Address,
		Latitude:           *request.Coordinates.Lat,
		Longitude:          *request.Coordinates.Lng,
		HasRamp:            request.Accessibility.HasRamp,
		HasTactilePath:     request.Accessibility.HasTactilePath,
		AccessibleWashroom: request.Accessibility.AccessibleWashroom,
		AddedBy:            volunteerID,
	}

	if _, err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToLocationResponse(loc)
	return &resp, nil
}

func (s *LocationService) Update(ctx context.Context, callerID uuid.UUID, id uuid.UUID, request request_models.UpdateLocationRequest) (*response_models.LocationResponse, error) {

	loc, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if loc == nil {
		return nil, utils.ErrNotFound
	}
	if loc.AddedBy != callerID {
		return nil, utils.ErrForbidden
	}

	if request.Name != "" {
		loc.Name = request.Name
	}
	if request.Address != "" {
		loc.Address = request.Address
	}
	if request.Accessibility != nil {
		loc.HasRamp = request.Accessibility.HasRamp
		loc.HasTactilePath = request.Accessibility.HasTactilePath
		loc.AccessibleWashroom = request.Accessibility.AccessibleWashroom
	}

	if err := s.locationRepo.Update(ctx, loc); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToLocationResponse(loc)
	return &resp, nil
}

func (s *LocationService) Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error {

	loc, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if loc == nil {
		return utils.ErrNotFound
	}
	if loc.AddedBy != callerID {
		return utils.ErrForbidden
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
