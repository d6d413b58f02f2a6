package handler

import (
	"net/http"

	"timebank/internal/service"

	"github.com/gin-gonic/gin"
)

type BankHandler struct{ bank *service.BankService }

func NewBankHandler(bank *service.BankService) *BankHandler {
	return &BankHandler{bank: bank}
}

// Snapshot handles GET /api/bank — the hour bank recomputed from the full
// period set and the current config.
func (h *BankHandler) Snapshot(c *gin.Context) {
	uid := c.GetInt("user_id")
	snap, err := h.bank.Snapshot(c.Request.Context(), uid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}
