package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type SalaryController struct {
	repo repositories.SalaryRepository
	log  zerolog.Logger
}

func NewSalaryController(repo repositories.SalaryRepository, log zerolog.Logger) *SalaryController {
	return &SalaryController{repo: repo, log: log}
}

// ListSalaries returns salary payouts, latest period first, with the employee name
func (sc *SalaryController) ListSalaries(c *gin.Context) {
	salaries, err := sc.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, salaries)
}

func (sc *SalaryController) CreateSalary(c *gin.Context) {
	var input models.SalaryInput
	if !bindJSON(c, &input) {
		return
	}

	salary, err := sc.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusCreated, salary)
}

func (sc *SalaryController) UpdateSalary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.SalaryInput
	if !bindJSON(c, &input) {
		return
	}

	if err := sc.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, sc.log, err)
		return
	}
	respondOK(c)
}

func (sc *SalaryController) DeleteSalary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := sc.repo.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, sc.log, err)
		return
	}
	respondOK(c)
}
