package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/voyagehub/payment-ledger/internal/domain/error"
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/domain/usecase/wallet"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles vendor wallet HTTP requests
type WalletHandler struct {
	walletService *wallet.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *wallet.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// GetBalance handles the GET /vendor/:vendorId/wallet endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	vendorIDParam := c.Param("vendorId")
	vendorID, err := strconv.ParseUint(vendorIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidVendorID),
			Message: "Invalid vendor ID format",
		})
		return
	}

	view, err := h.walletService.GetBalance(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(statusCodeFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{
		UserID:  view.UserID,
		Balance: view.Balance,
	})
}
