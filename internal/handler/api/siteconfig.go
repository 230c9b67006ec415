package api

import (
	"net/http"

	reqdto "hotel-portal/internal/handler/dto/request"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SiteConfigHandler struct {
	siteConfigUseCase usecase.SiteConfigUseCase
}

func NewSiteConfigHandler(siteConfigUseCase usecase.SiteConfigUseCase) *SiteConfigHandler {
	return &SiteConfigHandler{siteConfigUseCase: siteConfigUseCase}
}

// @Summary Homepage
// @Description Hotel name, descriptions and pictures for the landing page
// @Tags site
// @Produce json
// @Success 200 {object} resdto.HomepageResponse
// @Failure 502 {object} httperr.Response
// @Router /api/homepage [get]
func (h *SiteConfigHandler) Homepage(c *gin.Context) {
	hp, err := h.siteConfigUseCase.Homepage(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHomepage(hp))
}

// @Summary Site settings
// @Tags site
// @Produce json
// @Success 200 {object} resdto.UIConfigResponse
// @Failure 403 {object} httperr.Response
// @Router /api/ui-config [get]
func (h *SiteConfigHandler) Get(c *gin.Context) {
	cfg, err := h.siteConfigUseCase.Get(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUIConfig(cfg))
}

// @Summary Update site settings
// @Description Multipart: the JSON part "config" plus any new "images"
// @Tags site
// @Accept mpfd
// @Produce json
// @Param config formData string true "reqdto.UIConfigPayload as JSON"
// @Param images formData file false "New pictures"
// @Success 200 {object} resdto.UIConfigSavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/ui-config [put]
func (h *SiteConfigHandler) Update(c *gin.Context) {
	var payload reqdto.UIConfigPayload
	if err := bindJSONPart(c, "config", &payload); err != nil {
		abortBadRequest(c, err)
		return
	}
	images, err := readFiles(c, imagesField)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	cfg, msg, err := h.siteConfigUseCase.Update(c.Request.Context(), middleware.GetSession(c), payload.ToDomain(), images)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UIConfigSavedResponse{Config: resdto.FromUIConfig(cfg), Message: msg})
}
