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

// StaffHandler serves the reception's view of room occupants.
type StaffHandler struct {
	staffUseCase usecase.StaffUseCase
}

func NewStaffHandler(staffUseCase usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{staffUseCase: staffUseCase}
}

// @Summary Guests of a booking
// @Tags manager
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {array} resdto.GuestSummaryResponse
// @Router /api/manager/rooms/{id}/guests [get]
func (h *StaffHandler) Guests(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.staffUseCase.Guests(c.Request.Context(), middleware.GetSession(c), bookingID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestSummaries(rows))
}

// @Summary Remove a guest from a booking
// @Tags manager
// @Produce json
// @Param id path int true "Booking ID"
// @Param email path string true "Guest email"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/manager/rooms/{id}/guests/{email} [delete]
func (h *StaffHandler) RemoveGuest(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.staffUseCase.RemoveGuest(c.Request.Context(), middleware.GetSession(c), bookingID, c.Param("email"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Check a guest out
// @Tags manager
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.GuestEmailRequest true "Guest to check out"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/manager/bookings/{id}/check-out [post]
func (h *StaffHandler) CheckOut(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.GuestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	msg, err := h.staffUseCase.CheckOut(c.Request.Context(), middleware.GetSession(c), bookingID, req.Email)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Download a guest's passport
// @Tags manager
// @Produce application/pdf
// @Param bookingId path int true "Booking ID"
// @Param email path string true "Guest email"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /api/manager/documents/{bookingId}/{email} [get]
func (h *StaffHandler) Passport(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	doc, err := h.staffUseCase.Passport(c.Request.Context(), middleware.GetSession(c), bookingID, c.Param("email"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	sendDocument(c, doc)
}
