package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/services"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

func (fc *FeedbackController) Submit(c *gin.Context) {
	var body services.FeedbackInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := fc.Feedback.Submit(c.Request.Context(), c.GetUint("userID"), body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save feedback"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": fb.ID, "delivered": fb.Delivered})
}
