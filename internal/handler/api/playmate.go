package api

import (
	"errors"
	"net/http"

	"courtbook/internal/domain/playmate"
	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/infra"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaymateHandler struct {
	playmateCommands commands.PlaymateCommands
}

func NewPlaymateHandler(playmateCommands commands.PlaymateCommands) *PlaymateHandler {
	return &PlaymateHandler{playmateCommands: playmateCommands}
}

// @Summary Submit playmate post
// @Description Create or update the recruiting post for a confirmed booking
// @Tags playmates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpsertPlaymatePostRequest true "Playmate post request"
// @Success 200 {object} resdto.PlaymatePostResponse
// @Success 201 {object} resdto.PlaymatePostResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/playmate-post [put]
func (h *PlaymateHandler) UpsertPost(c *gin.Context) {
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

	var req reqdto.UpsertPlaymatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.playmateCommands.UpsertPost(c.Request.Context(), bookingID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPlaymatePostNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, commands.ErrPlaymateBookingNotConfirmed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not confirmed",
			})
		case errors.Is(err, playmate.ErrEmptyTitle),
			errors.Is(err, playmate.ErrTitleTooLong),
			errors.Is(err, playmate.ErrDescriptionTooLong),
			errors.Is(err, playmate.ErrInvalidPlayerCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid post data",
			})
		case infra.IsKind(err, infra.KindConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Concurrent post submission",
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
	c.JSON(status, resdto.PlaymatePostResponse{
		ID:            result.ID,
		BookingID:     result.BookingID,
		Title:         result.Title,
		Description:   result.Description,
		NeededPlayers: result.NeededPlayers,
		Status:        result.Status,
	})
}

// @Summary Set playmate post status
// @Description Open or close a playmate post
// @Tags playmates
// @Accept json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body reqdto.SetPlaymateStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /playmate-posts/{id}/status [patch]
func (h *PlaymateHandler) SetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid post ID",
		})
		return
	}

	var req reqdto.SetPlaymateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.playmateCommands.SetPostStatus(c.Request.Context(), postID, userID, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrPlaymatePostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Playmate post not found",
			})
		case errors.Is(err, commands.ErrPlaymatePostNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, playmate.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
