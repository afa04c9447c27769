package routes

import (
	"log"
	"strconv"
	"time"

	_ "momo_relay/docs" // This will be auto-generated
	"momo_relay/internal/adapter/http/dto/response"
	"momo_relay/internal/adapter/http/handlers"
	"momo_relay/internal/infrastructure/config"
	"momo_relay/internal/infrastructure/payments"
	"momo_relay/internal/usecase"
	"momo_relay/internal/usecase/interfaces"
	"momo_relay/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	var gateway interfaces.IPaymentGateway
	muGateway, err := payments.NewMoneyUnifyGateway(cfg.MoneyUnifyAuthID, cfg.MoneyUnifyBaseURL, cfg.ProviderTimeout)
	if err != nil {
		// Degraded mode: endpoints answer with a config error instead of crashing.
		log.Printf("MoneyUnify gateway not configured: %v", err)
	} else {
		gateway = muGateway
	}

	relayUseCase := usecase.NewPaymentRelayUseCase(gateway)

	relayHandler := handlers.NewPaymentRelayHandler(relayUseCase, cfg)
	healthHandler := handlers.NewHealthHandler(cfg)

	addRelayRoutes(router, relayHandler, healthHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, response.NotFound(c.Request.URL.Path))
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
	router.Use(requestIDMiddleware())
	router.Use(metricsMiddleware())
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		if path == "" {
			path = "unmatched"
		}
		metrics.IncRequest(path, c.Request.Method, strconv.Itoa(c.Writer.Status()))
		metrics.ObserveRequest(path, time.Since(start).Seconds())
	}
}
