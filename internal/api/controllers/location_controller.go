package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"smartinclusion/internal/models/request_models"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/middleware"
	"smartinclusion/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
}

func NewLocationController(locationService services.LocationServiceInterface) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// List godoc
// @Summary List all accessibility locations
// @Description Returns the full unfiltered set; visibility filtering is a client concern
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations [get]
func (l *LocationController) List(c *gin.Context) {
	locations, err := l.locationService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// ListVisible godoc
// @Summary List locations visible to a given accessibility need
// @Tags Locations
// @Produce json
// @Param need query string false "Accessibility need"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/visible [get]
func (l *LocationController) ListVisible(c *gin.Context) {
	locations, err := l.locationService.ListVisible(c.Request.Context(), c.Query("need"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// Create godoc
// @Summary Add a new location
// @Description Volunteer-only; ownership is taken from the session token
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body request_models.CreateLocationRequest true "Location payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations [post]
func (l *LocationController) Create(c *gin.Context) {
	var req request_models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please fill all fields.")
		return
	}

	location, err := l.locationService.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, location, "Location added successfully")
}

// Update godoc
// @Summary Update a location owned by the caller
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/{id} [put]
func (l *LocationController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var req request_models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := l.locationService.Update(c.Request.Context(), middleware.CallerID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location updated successfully")
}

// Delete godoc
// @Summary Delete a location owned by the caller
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (l *LocationController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := l.locationService.Delete(c.Request.Context(), middleware.CallerID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location deleted successfully")
}
