package api

import (
	"net/http"
	"strconv"

	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletQueries queries.WalletQueries
}

func NewWalletHandler(walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{walletQueries: walletQueries}
}

// @Summary Get wallet
// @Description Get the authenticated user's wallet balance
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WalletResponse
// @Router /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.walletQueries.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary List wallet transactions
// @Description List the authenticated user's wallet ledger, newest first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} resdto.WalletTransactionResponse
// @Router /wallet/transactions [get]
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.walletQueries.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.WalletTransactionResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromWalletTransactionView(v))
	}
	c.JSON(http.StatusOK, resp)
}
