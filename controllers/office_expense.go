package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type OfficeExpenseController struct {
	repo repositories.OfficeExpenseRepository
	log  zerolog.Logger
}

func NewOfficeExpenseController(repo repositories.OfficeExpenseRepository, log zerolog.Logger) *OfficeExpenseController {
	return &OfficeExpenseController{repo: repo, log: log}
}

func (oc *OfficeExpenseController) ListOfficeExpenses(c *gin.Context) {
	expenses, err := oc.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (oc *OfficeExpenseController) CreateOfficeExpense(c *gin.Context) {
	var input models.OfficeExpenseInput
	if !bindJSON(c, &input) {
		return
	}

	expense, err := oc.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, oc.log, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (oc *OfficeExpenseController) UpdateOfficeExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.OfficeExpenseInput
	if !bindJSON(c, &input) {
		return
	}

	if err := oc.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, oc.log, err)
		return
	}
	respondOK(c)
}

func (oc *OfficeExpenseController) DeleteOfficeExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := oc.repo.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, oc.log, err)
		return
	}
	respondOK(c)
}
