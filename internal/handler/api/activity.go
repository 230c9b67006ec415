package api

import (
	"net/http"

	reqdto "hotel-portal/internal/handler/dto/request"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const activityPart = "activity"

type ActivityHandler struct {
	activityUseCase usecase.ActivityUseCase
}

func NewActivityHandler(activityUseCase usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUseCase: activityUseCase}
}

// @Summary List activities
// @Description Without any filter every activity is listed
// @Tags activities
// @Produce json
// @Param pageIndex query int false "Zero-based page"
// @Param pageSize query int false "Page size"
// @Param name query string false "Name contains"
// @Param date query string false "yyyy-MM-dd"
// @Param capacity query int false "Free spots needed"
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Success 200 {object} resdto.Page[resdto.ActivityResponse]
// @Router /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	var q reqdto.ActivitySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	search, err := q.ToQuery()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	page, err := h.activityUseCase.List(c.Request.Context(), search)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityPage(page))
}

// @Summary Recommended activity
// @Tags activities
// @Produce json
// @Success 200 {object} resdto.ActivityResponse
// @Router /api/activities/recommended [get]
func (h *ActivityHandler) Recommended(c *gin.Context) {
	a, err := h.activityUseCase.Recommended(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivity(a))
}

// @Summary Activity details
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/activities/{id} [get]
func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.activityUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivity(a))
}

// @Summary Activity timeslots
// @Description Slots of an activity, with a price estimate when participants is given
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Param pageIndex query int false "Zero-based page"
// @Param pageSize query int false "Page size"
// @Param date query string false "yyyy-MM-dd, not in the past"
// @Param participants query int false "Group size"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 422 {object} httperr.Response
// @Router /api/activities/{id}/slots [get]
func (h *ActivityHandler) Slots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.SlotSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	search, err := q.ToQuery()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	list, err := h.activityUseCase.ListSlots(c.Request.Context(), id, search)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(list))
}

// @Summary Book an activity
// @Description The slot is checked for free spots before anything is sent
// @Tags activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body reqdto.SlotBookingRequest true "Slot and group size"
// @Success 201 {object} resdto.BookingResultResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/activities/{id}/bookings [post]
func (h *ActivityHandler) Book(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SlotBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	res, err := h.activityUseCase.Book(c.Request.Context(), middleware.GetSession(c), id, req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(res))
}

// @Summary My activity bookings
// @Tags activities
// @Produce json
// @Success 200 {array} resdto.ActivityBookingResponse
// @Router /api/activity-bookings/mine [get]
func (h *ActivityHandler) Mine(c *gin.Context) {
	rows, err := h.activityUseCase.Mine(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityBookings(rows))
}

// @Summary Activity payment return
// @Tags activities
// @Produce json
// @Param id path int true "Activity booking ID"
// @Param outcome query string true "success or cancel"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/activity-bookings/{id}/payment-return [post]
func (h *ActivityHandler) PaymentReturn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.PaymentReturnQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	msg, err := h.activityUseCase.PaymentReturn(c.Request.Context(), middleware.GetSession(c), id, q.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Create activity
// @Description Multipart: the JSON part "activity" with its schedule, plus pictures
// @Tags activities
// @Accept mpfd
// @Produce json
// @Param activity formData string true "reqdto.ActivityPayload as JSON"
// @Param mainImage formData file false "Main picture"
// @Param additionalImages formData file false "More pictures"
// @Success 201 {object} resdto.ActivitySavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	payload, images, ok := h.bindForm(c)
	if !ok {
		return
	}
	a, msg, err := h.activityUseCase.Create(c.Request.Context(), middleware.GetSession(c), payload.ToDomain(), images)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ActivitySavedResponse{Activity: resdto.FromActivity(a), Message: msg})
}

// @Summary Update activity
// @Tags activities
// @Accept mpfd
// @Produce json
// @Param id path int true "Activity ID"
// @Param activity formData string true "reqdto.ActivityPayload as JSON"
// @Param mainImage formData file false "Main picture"
// @Param additionalImages formData file false "More pictures"
// @Success 200 {object} resdto.ActivitySavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payload, images, ok := h.bindForm(c)
	if !ok {
		return
	}
	a, msg, err := h.activityUseCase.Update(c.Request.Context(), middleware.GetSession(c), id, payload.ToDomain(), images)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ActivitySavedResponse{Activity: resdto.FromActivity(a), Message: msg})
}

// @Summary Delete activity
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.activityUseCase.Delete(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

func (h *ActivityHandler) bindForm(c *gin.Context) (reqdto.ActivityPayload, backend.Images, bool) {
	var payload reqdto.ActivityPayload
	if err := bindJSONPart(c, activityPart, &payload); err != nil {
		abortBadRequest(c, err)
		return payload, backend.Images{}, false
	}
	images, err := readImages(c)
	if err != nil {
		abortBadRequest(c, err)
		return payload, backend.Images{}, false
	}
	return payload, images, true
}
