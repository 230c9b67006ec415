package api

import (
	"context"
	"net/http"

	"hotel-portal/internal/domain/session"
	reqdto "hotel-portal/internal/handler/dto/request"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type cleaningStep func(ctx context.Context, sess session.Session, roomID int64) (string, error)

type CleaningHandler struct {
	cleaningUseCase usecase.CleaningUseCase
}

func NewCleaningHandler(cleaningUseCase usecase.CleaningUseCase) *CleaningHandler {
	return &CleaningHandler{cleaningUseCase: cleaningUseCase}
}

// @Summary Cleaning board
// @Description Rooms with their requested window and cleaning state
// @Tags room-cleaning
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param onlyFree query bool false "Hide rooms in progress"
// @Success 200 {object} resdto.Page[resdto.CleaningRowResponse]
// @Failure 403 {object} httperr.Response
// @Router /api/room-cleaning [get]
func (h *CleaningHandler) Board(c *gin.Context) {
	var q reqdto.CleaningBoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	page, err := h.cleaningUseCase.StaffView(c.Request.Context(), middleware.GetSession(c), q.PageQuery.ToQuery(), q.OnlyFree)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCleaningBoard(page))
}

// @Summary Start cleaning a room
// @Tags room-cleaning
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 409 {object} httperr.Response
// @Router /api/room-cleaning/{id}/start [post]
func (h *CleaningHandler) Start(c *gin.Context) {
	h.transition(c, h.cleaningUseCase.Start)
}

// @Summary Finish cleaning a room
// @Tags room-cleaning
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/room-cleaning/{id}/finish [post]
func (h *CleaningHandler) Finish(c *gin.Context) {
	h.transition(c, h.cleaningUseCase.Finish)
}

func (h *CleaningHandler) transition(c *gin.Context, step cleaningStep) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := step(c.Request.Context(), middleware.GetSession(c), roomID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
