package routes

import (
	"momo_relay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreatePayment = "/create-mobile-money-payment"
	PathVerifyPayment = "/verify-mobile-money-payment"
)

func addRelayRoutes(r *gin.Engine, relayHandler *handlers.PaymentRelayHandler, healthHandler *handlers.HealthHandler) {
	r.GET("/", healthHandler.ServiceInfo)
	r.GET("/health", healthHandler.Health)

	r.POST(PathCreatePayment, relayHandler.CreateMobileMoneyPayment)
	r.POST(PathVerifyPayment, relayHandler.VerifyMobileMoneyPayment)
}
