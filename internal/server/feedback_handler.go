package server

import (
	"errors"
	"net/http"

	"feedbackManagement/internal/feedback"
	"feedbackManagement/models"

	"github.com/gin-gonic/gin"
)

type submitFeedbackRequest struct {
	ToUser  int64  `json:"to_user" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// handleSubmitFeedback records feedback from the authenticated caller.
func (s *Server) handleSubmitFeedback(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := s.Feedback.Submit(c.Request.Context(), p.Name, req.ToUser, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrUnknownSender):
			c.JSON(http.StatusNotFound, gin.H{"error": "sender not found"})
		case errors.Is(err, feedback.ErrUnknownRecipient):
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipient not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "feedback submitted",
		"feedback_id": f.ID,
	})
}

// handleListFeedback returns every feedback record in submission order.
// Unauthenticated, matching the original surface.
func (s *Server) handleListFeedback(c *gin.Context) {
	list, err := s.Feedback.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}
	if list == nil {
		list = []models.Feedback{}
	}
	c.JSON(http.StatusOK, list)
}

// handleListReceived returns the feedback addressed to the caller.
func (s *Server) handleListReceived(c *gin.Context) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	list, err := s.Feedback.ListReceived(c.Request.Context(), p.Name)
	if err != nil {
		if errors.Is(err, feedback.ErrUnknownSender) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}
	if list == nil {
		list = []models.Feedback{}
	}
	c.JSON(http.StatusOK, list)
}
