package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type EmployeeController struct {
	repo repositories.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeController(repo repositories.EmployeeRepository, log zerolog.Logger) *EmployeeController {
	return &EmployeeController{repo: repo, log: log}
}

// ListEmployees returns all employees ordered by name
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	employees, err := ec.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, ec.log, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input models.EmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	employee, err := ec.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, ec.log, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.EmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	if err := ec.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, ec.log, err)
		return
	}
	respondOK(c)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ec.repo.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, ec.log, err)
		return
	}
	respondOK(c)
}
