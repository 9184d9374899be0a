package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/services"
)

type MealController struct {
	Meals *services.MealService
	RT    *services.RealtimeHub
}

func NewMealController(meals *services.MealService, rt *services.RealtimeHub) *MealController {
	return &MealController{Meals: meals, RT: rt}
}

// pushSummary recomputes the day and fans it out to the user's open sockets.
func (mc *MealController) pushSummary(userID uint, date string) {
	mc.RT.BroadcastSummary(userID, mc.Meals.GetDailySummary(userID, date))
}

func (mc *MealController) LogMeal(c *gin.Context) {
	var body services.LogMealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	entry, err := mc.Meals.LogMeal(userID, body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log meal"})
		return
	}

	mc.pushSummary(userID, entry.ISTDate)
	c.JSON(http.StatusCreated, entry)
}

// ListByDay returns the entries for ?date=YYYY-MM-DD, defaulting to today.
func (mc *MealController) ListByDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.CivilDate(time.Now())
	} else if _, err := services.ParseCivilDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entries := mc.Meals.EntriesForDay(c.GetUint("userID"), date)
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

func (mc *MealController) UpdateEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var body services.UpdateEntryInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	entry, err := mc.Meals.UpdateEntry(userID, uint(id), body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		default:
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update entry"})
		}
		return
	}

	mc.pushSummary(userID, entry.ISTDate)
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry. Deleting something already gone is reported,
// not treated as a failure.
func (mc *MealController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	userID := c.GetUint("userID")
	deleted := mc.Meals.DeleteEntry(userID, uint(id))
	if deleted {
		mc.pushSummary(userID, services.CivilDate(time.Now()))
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (mc *MealController) DailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.CivilDate(time.Now())
	} else if _, err := services.ParseCivilDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, mc.Meals.GetDailySummary(c.GetUint("userID"), date))
}

// WeeklySummary returns seven daily summaries ending at ?end=YYYY-MM-DD
// (default today), oldest first.
func (mc *MealController) WeeklySummary(c *gin.Context) {
	end := time.Now()
	if v := c.Query("end"); v != "" {
		parsed, err := services.ParseCivilDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
			return
		}
		end = parsed
	}

	c.JSON(http.StatusOK, gin.H{"days": mc.Meals.GetWeeklySummary(c.GetUint("userID"), end)})
}
