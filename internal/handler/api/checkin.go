package api

import (
	"errors"
	"net/http"

	"hotel-portal/internal/domain/checkin"
	reqdto "hotel-portal/internal/handler/dto/request"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	checkInUseCase usecase.CheckInUseCase
}

func NewCheckInHandler(checkInUseCase usecase.CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{checkInUseCase: checkInUseCase}
}

// @Summary Check-in form for an own booking
// @Tags check-in
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CheckInFormResponse
// @Failure 404 {object} httperr.Response
// @Router /api/check-in/{id} [get]
func (h *CheckInHandler) SelfForm(c *gin.Context) {
	h.prepare(c, checkin.RouteCheckIn)
}

// @Summary Submit check-in for an own booking
// @Description Multipart form with the guest details and the passport PDF
// @Tags check-in
// @Accept mpfd
// @Produce json
// @Param id path int true "Booking ID"
// @Param passport formData file true "Passport scan (PDF, max 10 MB)"
// @Success 200 {object} resdto.MessageResponse
// @Failure 422 {object} httperr.Response
// @Router /api/check-in/{id} [post]
func (h *CheckInHandler) SelfSubmit(c *gin.Context) {
	h.submit(c, checkin.RouteCheckIn)
}

// @Summary Check-in form for an invited or added guest
// @Tags check-in
// @Produce json
// @Param email path string true "Guest email"
// @Param ownerEmail path string true "Booking owner email"
// @Param isManual path bool true "Added by staff"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CheckInFormResponse
// @Router /api/add-to-room/{email}/{ownerEmail}/{isManual}/{id} [get]
func (h *CheckInHandler) AddToRoomForm(c *gin.Context) {
	h.prepare(c, checkin.RouteAddToRoom)
}

// @Summary Submit check-in for an invited or added guest
// @Tags check-in
// @Accept mpfd
// @Produce json
// @Param email path string true "Guest email"
// @Param ownerEmail path string true "Booking owner email"
// @Param isManual path bool true "Added by staff"
// @Param id path int true "Booking ID"
// @Param passport formData file true "Passport scan (PDF, max 10 MB)"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/add-to-room/{email}/{ownerEmail}/{isManual}/{id} [post]
func (h *CheckInHandler) AddToRoomSubmit(c *gin.Context) {
	h.submit(c, checkin.RouteAddToRoom)
}

// @Summary Staff check-in form
// @Tags check-in
// @Produce json
// @Param email path string true "Guest email"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.CheckInFormResponse
// @Router /api/manual-check-in/{email}/{id} [get]
func (h *CheckInHandler) ManualForm(c *gin.Context) {
	h.prepare(c, checkin.RouteManualCheckIn)
}

// @Summary Submit staff check-in
// @Tags check-in
// @Accept mpfd
// @Produce json
// @Param email path string true "Guest email"
// @Param id path int true "Booking ID"
// @Param passport formData file true "Passport scan (PDF, max 10 MB)"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/manual-check-in/{email}/{id} [post]
func (h *CheckInHandler) ManualSubmit(c *gin.Context) {
	h.submit(c, checkin.RouteManualCheckIn)
}

func (h *CheckInHandler) prepare(c *gin.Context, kind checkin.RouteKind) {
	v, ok := variantOf(c, kind)
	if !ok {
		return
	}
	form, err := h.checkInUseCase.Prepare(c.Request.Context(), middleware.GetSession(c), v)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckInForm(form))
}

func (h *CheckInHandler) submit(c *gin.Context, kind checkin.RouteKind) {
	v, ok := variantOf(c, kind)
	if !ok {
		return
	}
	var form reqdto.CheckInForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	details, err := form.ToDomain()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	doc, err := readPassport(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	msg, err := h.checkInUseCase.Submit(c.Request.Context(), middleware.GetSession(c), v, details, doc)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// variantOf resolves the check-in flow from the path. A route that names no
// flow answers 404.
func variantOf(c *gin.Context, kind checkin.RouteKind) (checkin.Variant, bool) {
	route := checkin.Route{
		Kind:       kind,
		BookingID:  c.Param("id"),
		Email:      c.Param("email"),
		OwnerEmail: c.Param("ownerEmail"),
	}
	if kind == checkin.RouteAddToRoom && c.Param("isManual") == "true" {
		route.OwnerEmail = checkin.ManualOwner
	}

	v, err := checkin.VariantFromRoute(route)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "The requested room booking does not exist", nil)
		return nil, false
	}
	return v, true
}

// readPassport returns nil when no file was uploaded so the usecase can
// report which field is missing.
func readPassport(c *gin.Context) (*checkin.Document, error) {
	fh, err := c.FormFile(passportField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	f, err := readFile(fh)
	if err != nil {
		return nil, err
	}
	return &checkin.Document{
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        fh.Size,
		Content:     f.Content,
	}, nil
}
