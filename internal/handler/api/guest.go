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

type GuestHandler struct {
	guestUseCase usecase.GuestUseCase
}

func NewGuestHandler(guestUseCase usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{guestUseCase: guestUseCase}
}

// List serves both /api/guests and /api/guests/search; filters are optional.
//
// @Summary List guests
// @Tags guests
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param firstName query string false "First name contains"
// @Param lastName query string false "Last name contains"
// @Param email query string false "Email contains"
// @Success 200 {object} resdto.Page[resdto.GuestSummaryResponse]
// @Router /api/guests [get]
// @Router /api/guests/search [get]
func (h *GuestHandler) List(c *gin.Context) {
	var q reqdto.GuestSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	page, err := h.guestUseCase.List(c.Request.Context(), middleware.GetSession(c), q.ToQuery())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestSummaryPage(page))
}

// @Summary Guest profile
// @Tags guests
// @Produce json
// @Param email path string true "Guest email"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} httperr.Response
// @Router /api/guests/{email} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	g, err := h.guestUseCase.Get(c.Request.Context(), middleware.GetSession(c), c.Param("email"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.GuestRequest true "Guest profile"
// @Success 201 {object} resdto.GuestSavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	g, msg, err := h.guestUseCase.Create(c.Request.Context(), middleware.GetSession(c), req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.GuestSavedResponse{Guest: resdto.FromGuest(g), Message: msg})
}

// @Summary Update guest
// @Description An omitted password keeps the current one
// @Tags guests
// @Accept json
// @Produce json
// @Param email path string true "Guest email"
// @Param request body reqdto.GuestRequest true "Guest profile"
// @Success 200 {object} resdto.GuestSavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/guests/{email} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	var req reqdto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	g, msg, err := h.guestUseCase.Update(c.Request.Context(), middleware.GetSession(c), c.Param("email"), req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.GuestSavedResponse{Guest: resdto.FromGuest(g), Message: msg})
}

// @Summary Delete guest
// @Tags guests
// @Produce json
// @Param email path string true "Guest email"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/guests/{email} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	msg, err := h.guestUseCase.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("email"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
