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

type EmployeeHandler struct {
	employeeUseCase usecase.EmployeeUseCase
}

func NewEmployeeHandler(employeeUseCase usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{employeeUseCase: employeeUseCase}
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} resdto.EmployeeResponse
// @Router /api/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	rows, err := h.employeeUseCase.List(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployees(rows))
}

// @Summary Employee details
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} resdto.EmployeeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.employeeUseCase.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployee(e))
}

// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body reqdto.EmployeeRequest true "Employee"
// @Success 201 {object} resdto.EmployeeSavedResponse
// @Failure 422 {object} httperr.Response
// @Router /api/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	e, msg, err := h.employeeUseCase.Create(c.Request.Context(), middleware.GetSession(c), req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.EmployeeSavedResponse{Employee: resdto.FromEmployee(e), Message: msg})
}

// @Summary Update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body reqdto.EmployeeRequest true "Employee"
// @Success 200 {object} resdto.EmployeeSavedResponse
// @Router /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	e, msg, err := h.employeeUseCase.Update(c.Request.Context(), middleware.GetSession(c), id, req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EmployeeSavedResponse{Employee: resdto.FromEmployee(e), Message: msg})
}

// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.employeeUseCase.Delete(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Message(msg))
}
