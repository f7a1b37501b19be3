package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/feedback"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/infra"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedbackCommands commands.FeedbackCommands
}

func NewFeedbackHandler(feedbackCommands commands.FeedbackCommands) *FeedbackHandler {
	return &FeedbackHandler{feedbackCommands: feedbackCommands}
}

// @Summary Submit feedback
// @Description Create or update the review for a finished booking
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpsertFeedbackRequest true "Feedback request"
// @Success 200 {object} resdto.FeedbackResponse
// @Success 201 {object} resdto.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/feedback [put]
func (h *FeedbackHandler) UpsertFeedback(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.UpsertFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.feedbackCommands.UpsertFeedback(c.Request.Context(), bookingID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrFeedbackNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, commands.ErrFeedbackBookingNotDone):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not done yet",
			})
		case errors.Is(err, feedback.ErrEmptyComment), errors.Is(err, feedback.ErrCommentTooLong), errors.Is(err, feedback.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid feedback data",
			})
		case infra.IsKind(err, infra.KindConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent feedback submission",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FeedbackResponse{
		ID:        result.ID,
		BookingID: result.BookingID,
		Rating:    result.Rating,
		Comment:   result.Comment,
	})
}
