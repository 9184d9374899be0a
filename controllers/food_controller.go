package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/services"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

// Search answers ?q= lookups. The optional ?token= value is echoed back so
// clients firing a request per keystroke can drop responses that no longer
// match their latest query.
func (fc *FoodController) Search(c *gin.Context) {
	results := fc.Foods.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"token":   c.Query("token"),
		"results": results,
	})
}

func (fc *FoodController) CreateCustom(c *gin.Context) {
	var body services.CustomFoodInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Foods.CreateCustomFood(c.GetUint("userID"), body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save food"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) UpdateCustom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var body services.CustomFoodInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Foods.UpdateCustomFood(c.GetUint("userID"), uint(id), body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		default:
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update food"})
		}
		return
	}
	c.JSON(http.StatusOK, food)
}
