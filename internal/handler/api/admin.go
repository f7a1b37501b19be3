package api

import (
	"net/http"

	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookingCommands commands.BookingCommands
}

func NewAdminHandler(bookingCommands commands.BookingCommands) *AdminHandler {
	return &AdminHandler{bookingCommands: bookingCommands}
}

// @Summary Sweep bookings
// @Description Promote ended bookings to done and expire stale pending ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/sweep [post]
func (h *AdminHandler) SweepBookings(c *gin.Context) {
	result, err := h.bookingCommands.Sweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{
		PromotedToDone: result.PromotedToDone,
		ExpiredPending: result.ExpiredPending,
	})
}
