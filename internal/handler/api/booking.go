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

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Book a room
// @Description Paying in advance answers with the payment page to redirect to
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking form"
// @Success 201 {object} resdto.BookingResultResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	res, err := h.bookingUseCase.Create(c.Request.Context(), middleware.GetSession(c), req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(res))
}

// @Summary My bookings
// @Description Sorted by start date, with the check-in state of each booking
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings/mine [get]
func (h *BookingHandler) Mine(c *gin.Context) {
	rows, err := h.bookingUseCase.Mine(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestBookings(rows))
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/mine/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.bookingUseCase.Cancel(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Payment return
// @Description Landing call after the payment provider redirects back
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Param outcome query string true "success or cancel"
// @Success 200 {object} resdto.MessageResponse
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/payment-return [post]
func (h *BookingHandler) PaymentReturn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.PaymentReturnQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	msg, err := h.bookingUseCase.PaymentReturn(c.Request.Context(), middleware.GetSession(c), id, q.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Booking document
// @Tags bookings
// @Produce application/pdf
// @Param id path int true "Booking ID"
// @Param type path string true "BookingConfirmation.pdf, Invoice.pdf or BookingCancellation.pdf"
// @Success 200 {file} binary
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/mine/{id}/pdf/{type} [get]
func (h *BookingHandler) Document(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	doc, err := h.bookingUseCase.Document(c.Request.Context(), middleware.GetSession(c), id, c.Param("type"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	sendDocument(c, doc)
}

// @Summary Booking pass
// @Description QR code of the booking number for the front desk
// @Tags bookings
// @Produce image/png
// @Param id path int true "Booking ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/mine/{id}/pass.png [get]
func (h *BookingHandler) Pass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	png, err := h.bookingUseCase.Pass(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Check out
// @Description Leave the room of a booking from the bookings list
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckOutRequest true "Booking to leave"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/check-out [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if req.BookingID <= 0 {
		httperr.AbortWithUseCaseError(c, reqdto.ErrInvalidID)
		return
	}

	msg, err := h.bookingUseCase.CheckOut(c.Request.Context(), middleware.GetSession(c), req.BookingID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary All bookings
// @Tags manager
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.Page[resdto.ManagerBookingResponse]
// @Failure 403 {object} httperr.Response
// @Router /api/manager/bookings [get]
func (h *BookingHandler) Manager(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	page, err := h.bookingUseCase.Manager(c.Request.Context(), middleware.GetSession(c), q.ToQuery())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromManagerBookingPage(page))
}

// @Summary Mark paid
// @Description Record a cash payment at the front desk
// @Tags manager
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/manager/bookings/{id}/paid [put]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.bookingUseCase.MarkPaid(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
