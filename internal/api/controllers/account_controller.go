package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"smartinclusion/internal/models/db_models"
	"smartinclusion/internal/models/request_models"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/middleware"
	"smartinclusion/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// RegisterUser godoc
// @Summary Register a new user account
// @Description Create an account for a person with a disability
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register/user [post]
func (a *AccountController) RegisterUser(c *gin.Context) {
	a.register(c, db_models.RoleUser)
}

// RegisterVolunteer godoc
// @Summary Register a new volunteer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register/volunteer [post]
func (a *AccountController) RegisterVolunteer(c *gin.Context) {
	a.register(c, db_models.RoleVolunteer)
}

func (a *AccountController) register(c *gin.Context, role string) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please fill all required fields.")
		return
	}

	if err := a.accountService.Register(c.Request.Context(), role, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Registration successful!")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate against the stated role and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide email, password, and role.")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// UpdateUserProfile godoc
// @Summary Update the caller's own user profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/user/{id} [put]
func (a *AccountController) UpdateUserProfile(c *gin.Context) {
	a.updateProfile(c, db_models.RoleUser)
}

// UpdateVolunteerProfile godoc
// @Summary Update the caller's own volunteer profile
// @Tags Auth
// @Security BearerAuth
// @Router /auth/volunteer/{id} [put]
func (a *AccountController) UpdateVolunteerProfile(c *gin.Context) {
	a.updateProfile(c, db_models.RoleVolunteer)
}

func (a *AccountController) updateProfile(c *gin.Context, role string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), middleware.CallerID(c), role, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// Me godoc
// @Summary Fetch the caller's own profile
// @Tags Auth
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	profile, err := a.accountService.GetProfile(c.Request.Context(), c.GetString("role"), middleware.CallerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}
