package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type PartyController struct {
	repo repositories.PartyRepository
	log  zerolog.Logger
}

func NewPartyController(repo repositories.PartyRepository, log zerolog.Logger) *PartyController {
	return &PartyController{repo: repo, log: log}
}

// ListParties returns every party ordered by name
func (pc *PartyController) ListParties(c *gin.Context) {
	parties, err := pc.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

func (pc *PartyController) CreateParty(c *gin.Context) {
	var input models.PartyInput
	if !bindJSON(c, &input) {
		return
	}

	party, err := pc.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusCreated, party)
}

func (pc *PartyController) UpdateParty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.PartyInput
	if !bindJSON(c, &input) {
		return
	}

	if err := pc.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	respondOK(c)
}

func (pc *PartyController) DeleteParty(c *gin.Context) {
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

// SearchByChallan finds the party a challan number was issued to
func (pc *PartyController) SearchByChallan(c *gin.Context) {
	row, err := pc.repo.SearchByChallanNumber(c.Request.Context(), c.Query("challanNumber"))
	if err != nil {
		utils.RespondWithAppError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
