package controllers

import (
	"github.com/gin-gonic/gin"
	"smartinclusion/internal/services"
	"smartinclusion/pkg/utils"
)

type SchemeController struct {
	schemeService services.SchemeServiceInterface
}

func NewSchemeController(schemeService services.SchemeServiceInterface) *SchemeController {
	return &SchemeController{
		schemeService: schemeService,
	}
}

// List godoc
// @Summary List schemes applicable to an accessibility need
// @Description Matches the given need plus "general"; absent or "none" returns general schemes only
// @Tags Schemes
// @Produce json
// @Param accessibilityNeed query string false "Accessibility need"
// @Success 200 {object} utils.APIResponse
// @Router /schemes [get]
func (s *SchemeController) List(c *gin.Context) {
	schemes, err := s.schemeService.ListForNeed(c.Request.Context(), c.Query("accessibilityNeed"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schemes, "Schemes fetched successfully")
}
