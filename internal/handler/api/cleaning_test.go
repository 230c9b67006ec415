//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/handler/api"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/httptest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CleaningHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	cleaningUC *usecasemock.MockCleaningUseCase
	myRoomUC   *usecasemock.MockMyRoomUseCase
	sess       session.Session
}

func (s *CleaningHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cleaningUC = usecasemock.NewMockCleaningUseCase(s.mockCtrl)
	s.myRoomUC = usecasemock.NewMockMyRoomUseCase(s.mockCtrl)
	s.sess = authtest.Session(s.T(), "clean@hotel.com", session.RoleCleaningStaff, time.Now())

	board := api.NewCleaningHandler(s.cleaningUC)
	myRoom := api.NewMyRoomHandler(s.myRoomUC, s.cleaningUC)

	s.router.Use(func(c *gin.Context) {
		middleware.SetSession(c, s.sess)
		c.Next()
	})
	s.router.GET("/api/room-cleaning", board.Board)
	s.router.POST("/api/room-cleaning/:id/start", board.Start)
	s.router.POST("/api/room-cleaning/:id/finish", board.Finish)
	s.router.POST("/api/my-room/:roomId/cleaning", myRoom.Schedule)
}

func (s *CleaningHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCleaningHandlerSuite(t *testing.T) {
	suite.Run(t, new(CleaningHandlerTestSuite))
}

func (s *CleaningHandlerTestSuite) TestBoard() {
	s.cleaningUC.EXPECT().StaffView(gomock.Any(), s.sess, queries.PageRequest{Page: 2, Size: 5}, true).
		Return(readmodel.Page[readmodel.CleaningRowRM]{
			Content: []readmodel.CleaningRowRM{
				{Room: room.Room{ID: 4, Name: "Garden Room"}, InProgress: true, LastCleanedLabel: "yesterday"},
				{Room: room.Room{ID: 5, Name: "Loft"}, Err: "Occupancy unknown."},
			},
			TotalElements: 12,
		}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/room-cleaning?page=2&size=5&onlyFree=true", nil, s.sess.Token())

	var res resdto.Page[resdto.CleaningRowResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(12, res.TotalElements)
	s.Require().Len(res.Content, 2)
	s.Equal("Garden Room", res.Content[0].RoomInfo.Name)
	s.True(res.Content[0].InProgress)
	s.Equal("yesterday", res.Content[0].LastCleanedLabel)
	s.Equal("Occupancy unknown.", res.Content[1].Error)
}

func (s *CleaningHandlerTestSuite) TestStartFinish() {
	s.Run("start", func() {
		s.cleaningUC.EXPECT().Start(gomock.Any(), s.sess, int64(4)).Return(cleaning.StartedMessage, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/room-cleaning/4/start", nil, s.sess.Token())

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(cleaning.StartedMessage, res.Message)
	})

	s.Run("finish without start is rejected", func() {
		s.cleaningUC.EXPECT().Finish(gomock.Any(), s.sess, int64(4)).Return("", cleaning.ErrCleaningTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/room-cleaning/4/finish", nil, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, cleaning.ErrCleaningTransition.Error())
	})
}

func (s *CleaningHandlerTestSuite) TestSchedule() {
	s.Run("success", func() {
		s.cleaningUC.EXPECT().Schedule(gomock.Any(), s.sess, int64(5), calendar.NewClockTime(13, 0), calendar.NewClockTime(14, 30)).
			Return("Cleaning time saved.", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/my-room/5/cleaning",
			map[string]any{"from": "13:00", "to": "14:30"}, s.sess.Token())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unparseable time", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/my-room/5/cleaning",
			map[string]any{"from": "1 pm", "to": "14:30"}, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Please enter a valid time")
	})

	s.Run("window rules come from the usecase", func() {
		s.cleaningUC.EXPECT().Schedule(gomock.Any(), gomock.Any(), int64(5), gomock.Any(), gomock.Any()).
			Return("", cleaning.ErrWindowOrder)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/my-room/5/cleaning",
			map[string]any{"from": "14:00", "to": "13:00"}, s.sess.Token())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, `"From" is earlier than "To"`)
	})
}
