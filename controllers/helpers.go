package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mktrading-backend/utils"
)

// parseID reads the :id path parameter. It writes the 400 itself on failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func respondOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
