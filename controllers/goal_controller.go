package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/services"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (gc *GoalController) SetGoals(c *gin.Context) {
	var body services.GoalInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Upsert(c.GetUint("userID"), body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goals"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetGoals returns the saved targets alongside progress for ?date= (default
// today).
func (gc *GoalController) GetGoals(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.CivilDate(time.Now())
	} else if _, err := services.ParseCivilDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	goal, progress := gc.Goals.GoalsWithProgress(c.GetUint("userID"), date)
	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"goals":    goal,
		"progress": progress,
	})
}
