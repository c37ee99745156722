package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type SuggestionController struct {
	suggestions *services.SuggestionService
}

func NewSuggestionController(suggestions *services.SuggestionService) *SuggestionController {
	return &SuggestionController{suggestions: suggestions}
}

func (ctl *SuggestionController) Chat(c *gin.Context) {
	var body struct {
		Message string                 `json:"message" binding:"required"`
		History []services.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := ctl.suggestions.Ask(c.Request.Context(), body.History, body.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
