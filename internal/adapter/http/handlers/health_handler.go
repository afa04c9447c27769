package handlers

import (
	"net/http"

	"momo_relay/internal/adapter/http/dto/response"
	"momo_relay/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg config.Config
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health reports liveness and whether the provider credential is present.
//
//	@Summary	Service health
//	@Produce	json
//	@Success	200	{object}	response.HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewHealthResponse(config.ServiceName, h.cfg.MoneyUnifyConfigured()))
}

// ServiceInfo lists the service metadata and available endpoints.
//
//	@Summary	Service metadata
//	@Produce	json
//	@Success	200	{object}	response.ServiceInfoResponse
//	@Router		/ [get]
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewServiceInfoResponse(config.ServiceName, config.ServiceVersion))
}
