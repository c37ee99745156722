package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

func (ctl *MealController) LogMeal(c *gin.Context) {
	var body services.AddMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := ctl.meals.AddMeal(currentUser(c), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (ctl *MealController) GetDay(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	records, groups, err := ctl.meals.Day(currentUser(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "records": records, "groups": groups})
}

func (ctl *MealController) UpdateMeal(c *gin.Context) {
	date := c.Param("date")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	var body struct {
		Servings float64 `json:"servings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := ctl.meals.UpdateServings(currentUser(c), date, index, body.Servings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	date := c.Param("date")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if err := ctl.meals.DeleteMeal(currentUser(c), date, index); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
