package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/infra"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	courtQueries queries.CourtQueries
	slotCommands commands.SlotCommands
}

func NewCourtHandler(courtQueries queries.CourtQueries, slotCommands commands.SlotCommands) *CourtHandler {
	return &CourtHandler{
		courtQueries: courtQueries,
		slotCommands: slotCommands,
	}
}

// @Summary List courts
// @Description List all active courts ordered by priority
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	views, err := h.courtQueries.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.CourtResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromCourtView(v))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get court
// @Description Get one court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [get]
func (h *CourtHandler) GetCourt(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	view, err := h.courtQueries.GetByID(c.Request.Context(), courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary List court slots
// @Description List a court's slots for one day
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /courts/{id}/slots [get]
func (h *CourtHandler) ListSlots(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.courtQueries.ListSlots(c.Request.Context(), courtID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Generate slots
// @Description Bulk-generate fixed-duration slots for a court (admin)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.GenerateSlotsRequest true "Slot generation request"
// @Success 201 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courts/{id}/slots [post]
func (h *CourtHandler) GenerateSlots(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID",
		})
		return
	}

	var req reqdto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	views, err := h.slotCommands.GenerateSlots(c.Request.Context(), courtID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, commands.ErrSlotOverlap):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot range overlaps existing slots",
			})
		case errors.Is(err, commands.ErrInvalidSlotRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotViews(views))
}
