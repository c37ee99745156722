package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (ctl *AnalyticsController) Summary(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	summary, err := ctl.analytics.DailySummary(currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *AnalyticsController) Trend(c *gin.Context) {
	rng := services.TrendRange(c.DefaultQuery("range", string(services.RangeWeek)))
	includeMissing := c.Query("include_missing") == "true"
	trend, err := ctl.analytics.CalorieTrend(currentUser(c), rng, includeMissing)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"range": rng, "days": trend})
}
