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

type MyRoomHandler struct {
	myRoomUseCase   usecase.MyRoomUseCase
	cleaningUseCase usecase.CleaningUseCase
}

func NewMyRoomHandler(myRoomUseCase usecase.MyRoomUseCase, cleaningUseCase usecase.CleaningUseCase) *MyRoomHandler {
	return &MyRoomHandler{
		myRoomUseCase:   myRoomUseCase,
		cleaningUseCase: cleaningUseCase,
	}
}

// @Summary My rooms
// @Description Rooms the caller is checked into, with occupants, key status and cleaning window
// @Tags my-room
// @Produce json
// @Success 200 {array} resdto.MyRoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/my-room [get]
func (h *MyRoomHandler) View(c *gin.Context) {
	rows, err := h.myRoomUseCase.View(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMyRooms(rows))
}

// @Summary Schedule room cleaning
// @Tags my-room
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body reqdto.CleaningWindowRequest true "HH:mm window"
// @Success 200 {object} resdto.MessageResponse
// @Failure 422 {object} httperr.Response
// @Router /api/my-room/{roomId}/cleaning [post]
func (h *MyRoomHandler) Schedule(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	var req reqdto.CleaningWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	from, to, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	msg, err := h.cleaningUseCase.Schedule(c.Request.Context(), middleware.GetSession(c), roomID, from, to)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Invite a guest to the room
// @Tags my-room
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body reqdto.InviteRequest true "Invitee"
// @Success 200 {object} resdto.MessageResponse
// @Failure 422 {object} httperr.Response
// @Router /api/my-room/{roomId}/invite [post]
func (h *MyRoomHandler) Invite(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	var req reqdto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	msg, err := h.myRoomUseCase.Invite(c.Request.Context(), middleware.GetSession(c), roomID, req.Email)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Check out of the room
// @Tags my-room
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/my-room/{roomId}/check-out [post]
func (h *MyRoomHandler) CheckOut(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	msg, err := h.myRoomUseCase.CheckOut(c.Request.Context(), middleware.GetSession(c), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}

// @Summary Open the smart lock
// @Tags my-room
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/my-room/{roomId}/unlock [post]
func (h *MyRoomHandler) Unlock(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}
	msg, err := h.myRoomUseCase.Unlock(c.Request.Context(), middleware.GetSession(c), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
