package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"signature-seal-backend/config"
	"signature-seal-backend/utils"
)

type LoginInput struct {
	Password string `json:"password"`
}

// AuthController issues the admin panel's session token.
type AuthController struct {
	cfg    config.Config
	logger *zap.Logger
}

func NewAuthController(cfg config.Config, logger *zap.Logger) *AuthController {
	return &AuthController{cfg: cfg, logger: logger}
}

// Login checks the admin password and returns a two-hour JWT.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !ac.passwordMatches(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := utils.GenerateAdminToken(ac.cfg.JWTSecret)
	if err != nil {
		ac.logger.Error("failed to sign admin token", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// passwordMatches prefers the bcrypt hash when one is configured and
// falls back to comparing against the plain ADMIN_PASSWORD.
func (ac *AuthController) passwordMatches(password string) bool {
	if ac.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(ac.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare(
		[]byte(ac.cfg.AdminPassword), []byte(password)) == 1
}
