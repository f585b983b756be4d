package handler

import (
	"net/http"

	"mensajeria_server/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查
type HealthHandler struct {
	healthSvc service.HealthService
}

func NewHealthHandler(healthSvc service.HealthService) *HealthHandler {
	return &HealthHandler{healthSvc: healthSvc}
}

// Healthz GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.healthSvc.Ping(c.Request.Context()); err != nil {
		HandleError(c, err, false)
		return
	}
	HandleText(c, http.StatusOK, "ok")
}
