package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployeeByID)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// callerScope extracts the authenticated (organization, user) pair or aborts
// with 401. Every tenant-scoped handler starts here.
func callerScope(c *gin.Context) (organizationID, userID string, ok bool) {
	organizationID, ok = middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	return organizationID, userID, true
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Adds a new employee record to the caller's organization.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Lists all employees of the caller's organization, newest first.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: dto.ToEmployeeResponses(employees)})
}

// getEmployeeByID godoc
// @Summary Get an employee
// @Description Retrieves one employee of the caller's organization.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update over one employee of the caller's organization.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), organizationID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Hard-deletes one employee; their team assignments are removed with them.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), organizationID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}

	c.Status(http.StatusNoContent)
}
