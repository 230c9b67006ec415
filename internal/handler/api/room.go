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

type RoomHandler struct {
	roomUseCase    usecase.RoomUseCase
	bookingUseCase usecase.BookingUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase, bookingUseCase usecase.BookingUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase:    roomUseCase,
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Search rooms
// @Description Free rooms for a stay; without dates every room is listed
// @Tags rooms
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param startDate query string false "yyyy-MM-dd"
// @Param endDate query string false "yyyy-MM-dd"
// @Param capacity query int false "Guests"
// @Param minPrice query number false "Lowest nightly price"
// @Param maxPrice query number false "Highest nightly price"
// @Success 200 {object} resdto.Page[resdto.RoomResponse]
// @Failure 422 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) Search(c *gin.Context) {
	var q reqdto.RoomSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	search, err := q.ToQuery()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	page, err := h.roomUseCase.Search(c.Request.Context(), search)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomPage(page))
}

// @Summary Room details
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.roomUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(r))
}

// @Summary Price preview
// @Description Nights times nightly price plus tax; the backend charges the authoritative amount
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Param startDate query string true "yyyy-MM-dd"
// @Param endDate query string true "yyyy-MM-dd"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/{id}/quote [get]
func (h *RoomHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	start, end, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	est, err := h.bookingUseCase.Quote(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEstimate(est))
}

// @Summary Manager room search
// @Tags rooms
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param name query string false "Name contains"
// @Param description query string false "Description contains"
// @Param minCapacity query int false "Smallest capacity"
// @Param maxCapacity query int false "Largest capacity"
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Success 200 {object} resdto.Page[resdto.RoomResponse]
// @Failure 403 {object} httperr.Response
// @Router /api/manager/rooms [get]
func (h *RoomHandler) AdminSearch(c *gin.Context) {
	var q reqdto.RoomAdminSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	page, err := h.roomUseCase.AdminSearch(c.Request.Context(), middleware.GetSession(c), q.ToQuery())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomPage(page))
}

// @Summary Create room
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param capacity formData int true "Capacity"
// @Param price formData number true "Nightly price"
// @Param smartLockId formData string false "Smart lock"
// @Param mainImage formData file false "Main picture"
// @Param additionalImages formData file false "More pictures"
// @Success 201 {object} resdto.RoomSavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var form reqdto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	images, err := readImages(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	r, msg, err := h.roomUseCase.Create(c.Request.Context(), middleware.GetSession(c), form.ToDomain(), images)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RoomSavedResponse{Room: resdto.FromRoom(r), Message: msg})
}

// @Summary Update room
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Param id path int true "Room ID"
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param capacity formData int true "Capacity"
// @Param price formData number true "Nightly price"
// @Param smartLockId formData string false "Smart lock"
// @Param mainImage formData file false "Main picture"
// @Param additionalImages formData file false "More pictures"
// @Success 200 {object} resdto.RoomSavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var form reqdto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	images, err := readImages(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	r, msg, err := h.roomUseCase.Update(c.Request.Context(), middleware.GetSession(c), id, form.ToDomain(), images)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomSavedResponse{Room: resdto.FromRoom(r), Message: msg})
}

// @Summary Delete room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.roomUseCase.Delete(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
