package routes

import (
	coreport "github.com/voyagehub/payment-ledger/internal/domain/port/core"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	webhookHandler *handler.WebhookHandler,
	transactionHandler *handler.TransactionHandler,
	walletHandler *handler.WalletHandler,
) {
	// Processor webhook endpoint
	paymentRoutes := router.Group("/payment")
	{
		// POST /payment/stripe/webhook
		paymentRoutes.POST("/stripe/webhook", webhookHandler.HandleStripeWebhook)
	}

	// Ledger transaction routes
	transactionRoutes := router.Group("/transaction")
	{
		// POST /transaction
		transactionRoutes.POST("", transactionHandler.CreateTransaction)

		// PATCH /transaction/:reference
		transactionRoutes.PATCH("/:reference", transactionHandler.UpdateTransaction)
	}

	// Vendor wallet routes
	vendorRoutes := router.Group("/vendor")
	{
		// GET /vendor/:vendorId/wallet
		vendorRoutes.GET("/:vendorId/wallet", walletHandler.GetBalance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
