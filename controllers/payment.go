package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type PaymentController struct {
	repo repositories.PaymentRepository
	log  zerolog.Logger
}

func NewPaymentController(repo repositories.PaymentRepository, log zerolog.Logger) *PaymentController {
	return &PaymentController{repo: repo, log: log}
}

// ListPayments returns payments, newest first
func (pc *PaymentController) ListPayments(c *gin.Context) {
	payments, err := pc.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var input models.PaymentInput
	if !bindJSON(c, &input) {
		return
	}

	payment, err := pc.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.PaymentInput
	if !bindJSON(c, &input) {
		return
	}

	if err := pc.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	respondOK(c)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.repo.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	respondOK(c)
}
