package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type ChallanController struct {
	repo repositories.ChallanRepository
	log  zerolog.Logger
}

func NewChallanController(repo repositories.ChallanRepository, log zerolog.Logger) *ChallanController {
	return &ChallanController{repo: repo, log: log}
}

func (cc *ChallanController) ListChallans(c *gin.Context) {
	challans, err := cc.repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, challans)
}

func (cc *ChallanController) CreateChallan(c *gin.Context) {
	var input models.ChallanInput
	if !bindJSON(c, &input) {
		return
	}

	challan, err := cc.repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusCreated, challan)
}

func (cc *ChallanController) UpdateChallan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input models.ChallanInput
	if !bindJSON(c, &input) {
		return
	}

	if err := cc.repo.Update(c.Request.Context(), id, input); err != nil {
		utils.RespondWithAppError(c, cc.log, err)
		return
	}
	respondOK(c)
}

func (cc *ChallanController) DeleteChallan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.repo.Delete(c.Request.Context(), id); err != nil {
		utils.RespondWithAppError(c, cc.log, err)
		return
	}
	respondOK(c)
}

// SearchByParty filters challans by ?partyId= or ?partyName=
func (cc *ChallanController) SearchByParty(c *gin.Context) {
	challans, err := cc.repo.SearchByParty(c.Request.Context(), models.ChallanPartyFilter{
		PartyID:   c.Query("partyId"),
		PartyName: c.Query("partyName"),
	})
	if err != nil {
		utils.RespondWithAppError(c, cc.log, err)
		return
	}
	c.JSON(http.StatusOK, challans)
}
