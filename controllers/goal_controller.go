package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (ctl *GoalController) GetGoal(c *gin.Context) {
	goal, err := ctl.goals.GetGoal(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_calorie_goal": goal})
}

func (ctl *GoalController) SetGoal(c *gin.Context) {
	var body struct {
		DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.goals.SetGoal(currentUser(c), body.DailyCalorieGoal); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *GoalController) Progress(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	progress, err := ctl.goals.DailyProgress(currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "progress": progress})
}
