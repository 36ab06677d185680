// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/services"
	"mktrading-backend/utils"
)

type AuthController struct {
	auth *services.AuthService
	log  zerolog.Logger
}

func NewAuthController(auth *services.AuthService, log zerolog.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

// Login exchanges a username and password for a bearer token
func (ac *AuthController) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := ac.auth.Login(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithAppError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
