package api

import (
	"net/http"

	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GuardHandler struct {
	guardUseCase usecase.GuardUseCase
}

func NewGuardHandler(guardUseCase usecase.GuardUseCase) *GuardHandler {
	return &GuardHandler{guardUseCase: guardUseCase}
}

// @Summary Route guard
// @Description Decide whether the caller may open a page of the browser app
// @Tags guard
// @Produce json
// @Param path query string true "Page path, e.g. /room-cleaning"
// @Success 200 {object} resdto.DecisionResponse
// @Router /api/guard [get]
func (h *GuardHandler) Decide(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	d := h.guardUseCase.Decide(c.Request.Context(), path, middleware.GetSession(c))
	c.JSON(http.StatusOK, d)
}

// @Summary Module switches
// @Description Which optional features are enabled
// @Tags guard
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/modules [get]
func (h *GuardHandler) Modules(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromModules(h.guardUseCase.Modules(c.Request.Context())))
}
