package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signature-seal-backend/services"
	"signature-seal-backend/utils"
)

type RecommendInput struct {
	Query string `json:"query"`
}

// Recommend answers the "which service do I need" widget with the static
// keyword lookup.
func Recommend(c *gin.Context) {
	var input RecommendInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Query == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Query required")
		return
	}
	c.JSON(http.StatusOK, services.RecommendService(input.Query))
}
