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

type AccountServiceInterface interface {
	Register(ctx context.Context, role string, request request_models.RegisterRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, role string, id uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	GetProfile(ctx context.Context, role string, id uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtSecret   string
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtSecret string) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
	}
}

func (a *AccountService) Register(ctx context.Context, role string, request request_models.RegisterRequest) error {

	need := request.AccessibilityNeed
	switch role {
	case db_models.RoleUser:
		if need == "" {
			return utils.ErrValidation
		}
		if need == db_models.NeedOther && request.NeedDetail == "" {
			return utils.ErrValidation
		}
	case db_models.RoleVolunteer:
		// Volunteers do not declare a need.
		need = db_models.NeedNone
	default:
		return utils.ErrValidation
	}

	// Email must be unique across both roles, so the lookup ignores role.
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		FullName:          request.FullName,
		Email:             request.Email,
		Phone:             request.Phone,
		PasswordHash:      hashedPassword,
		Role:              role,
		AccessibilityNeed: need,
		NeedDetail:        request.NeedDetail,
		Available:         true,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {

	// Lookup is scoped to the stated role; it is never inferred. An absent
	// account and a wrong password produce the same error on purpose.
	account, err := a.accountRepo.FindByEmailAndRole(ctx, request.Email, request.LoginAs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.jwtSecret, account.ID, account.Role, account.FullName)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  response_models.ToAccountResponse(account),
	}, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, callerID uuid.UUID, role string, id uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {

	if callerID != id {
		return nil, utils.ErrForbidden
	}

	account, err := a.accountRepo.FindByIDAndRole(ctx, id, role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}

	if request.FullName != "" {
		account.FullName = request.FullName
	}
	if request.Phone != "" {
		account.Phone = request.Phone
	}
	if account.Role == db_models.RoleUser && request.AccessibilityNeed != "" {
		if request.AccessibilityNeed == db_models.NeedOther && request.NeedDetail == "" {
			return nil, utils.ErrValidation
		}
		account.AccessibilityNeed = request.AccessibilityNeed
		account.NeedDetail = request.NeedDetail
	}
	if account.Role == db_models.RoleVolunteer && request.Available != nil {
		account.Available = *request.Available
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) GetProfile(ctx context.Context, role string, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByIDAndRole(ctx, id, role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}

	resp := response_models.ToAccountResponse(account)
	return &resp, nil
}
