package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type RecommendationController struct {
	recs *services.RecommendationService
}

func NewRecommendationController(recs *services.RecommendationService) *RecommendationController {
	return &RecommendationController{recs: recs}
}

func (ctl *RecommendationController) GetPlan(c *gin.Context) {
	goal := services.Goal(c.Query("goal"))
	params := services.RecommendationParams{
		WeightLossFallback: services.FallbackScope(c.Query("fallback")),
	}
	if raw := c.Query("protein_threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "protein_threshold must be a number"})
			return
		}
		params.HighProteinThreshold = threshold
	}

	plan, err := ctl.recs.Recommend(goal, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctl *RecommendationController) CaloriePlan(c *gin.Context) {
	var body struct {
		Target float64 `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.recs.CaloriePlan(body.Target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
