//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/handler/api"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/httptest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockBookingUseCase
	sess     session.Session
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.sess = authtest.Session(s.T(), "anna@hotel.com", session.RoleGuest, time.Now())
	h := api.NewBookingHandler(s.mockUC)

	s.router.Use(func(c *gin.Context) {
		middleware.SetSession(c, s.sess)
		c.Next()
	})
	s.router.POST("/api/bookings", h.Create)
	s.router.DELETE("/api/bookings/mine/:id", h.Cancel)
	s.router.POST("/api/bookings/:id/payment-return", h.PaymentReturn)
	s.router.GET("/api/bookings/mine/:id/pdf/:type", h.Document)
	s.router.GET("/api/bookings/mine/:id/pass.png", h.Pass)
	s.router.POST("/api/check-out", h.CheckOut)
	s.router.GET("/api/manager/bookings", h.Manager)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"
	reqBody := map[string]any{
		"roomId":        3,
		"roomName":      "Alpine Suite",
		"startDate":     "2025-05-01",
		"endDate":       "2025-05-04",
		"paymentMethod": "PayCash",
	}

	s.Run("success: forwards the form with the caller's session", func() {
		want := usecase.BookingInput{
			RoomID:        3,
			RoomName:      "Alpine Suite",
			Start:         calendar.NewDate(2025, 5, 1),
			End:           calendar.NewDate(2025, 5, 4),
			PaymentMethod: booking.PayCash,
		}
		s.mockUC.EXPECT().Create(gomock.Any(), s.sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, in usecase.BookingInput) (usecase.BookingResult, error) {
				if diff := cmp.Diff(want, in, cmp.AllowUnexported(calendar.Date{})); diff != "" {
					s.Failf("booking input mismatch", "(-want +got):\n%s", diff)
				}
				return usecase.BookingResult{Booking: booking.Booking{ID: 41}, Message: usecase.MsgBookingCreated}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sess.Token())

		var res resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(resdto.BookingResultResponse{BookingID: 41, Message: usecase.MsgBookingCreated}, res)
	})

	s.Run("success: paying in advance answers with the redirect", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), s.sess, gomock.Any()).
			Return(usecase.BookingResult{Booking: booking.Booking{ID: 42}, RedirectURL: "https://pay.example.com/s/1"}, nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("paymentMethod", "PayInAdvance"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.sess.Token())

		var res resdto.BookingResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("https://pay.example.com/s/1", res.RedirectURL)
		s.Empty(res.Message)
	})

	s.Run("error: malformed date is a bad request", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("startDate", "01.05.2025"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase notification is passed through", func() {
		s.mockUC.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BookingResult{}, notice.New(http.StatusConflict, "Room is already booked for these dates."))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is already booked for these dates.")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("success", func() {
		s.mockUC.EXPECT().Cancel(gomock.Any(), s.sess, int64(7)).Return(usecase.MsgBookingCancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/mine/7", nil, s.sess.Token())

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(usecase.MsgBookingCancelled, res.Message)
	})

	for _, raw := range []string{"abc", "0", "-3"} {
		s.Run("error: invalid id "+raw, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/mine/"+raw, nil, s.sess.Token())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid id.")
		})
	}
}

func (s *BookingHandlerTestSuite) TestPaymentReturn() {
	s.mockUC.EXPECT().PaymentReturn(gomock.Any(), s.sess, int64(9), usecase.PaymentCancel).
		Return(usecase.MsgPaymentCancelled, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/9/payment-return?outcome=cancel", nil, s.sess.Token())

	var res resdto.MessageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(usecase.MsgPaymentCancelled, res.Message)
}

func (s *BookingHandlerTestSuite) TestDocument() {
	s.mockUC.EXPECT().Document(gomock.Any(), s.sess, int64(7), "Invoice.pdf").
		Return(readmodel.DocumentRM{Name: "Invoice.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/mine/7/pdf/Invoice.pdf", nil, s.sess.Token())

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("%PDF", rec.Body.String())
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Content-Type":        "application/pdf",
		"Content-Disposition": `attachment; filename="Invoice.pdf"`,
	})
}

func (s *BookingHandlerTestSuite) TestPass() {
	s.mockUC.EXPECT().Pass(gomock.Any(), s.sess, int64(7)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/mine/7/pass.png", nil, s.sess.Token())

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Content-Type":  "image/png",
		"Cache-Control": "private, max-age=300",
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	s.Run("success", func() {
		s.mockUC.EXPECT().CheckOut(gomock.Any(), s.sess, int64(12)).Return(usecase.MsgCheckedOut, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check-out", map[string]any{"bookingId": 12}, s.sess.Token())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: missing booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/check-out", map[string]any{}, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid id.")
	})
}

func (s *BookingHandlerTestSuite) TestManager_NormalizesPaging() {
	s.mockUC.EXPECT().Manager(gomock.Any(), s.sess, queries.PageRequest{Page: 0, Size: queries.MaxPageSize}).
		Return(readmodel.Page[readmodel.ManagerBookingRM]{TotalElements: 0}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/manager/bookings?page=-1&size=5000", nil, s.sess.Token())

	var res resdto.Page[resdto.ManagerBookingResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(0, res.TotalElements)
}
