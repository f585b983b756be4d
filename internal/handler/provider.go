package handler

import (
	"mensajeria_server/internal/service"
)

// Handlers 聚合所有 Handler 实例，Router 层通过此结构访问各个 Handler
type Handlers struct {
	Contact *ContactHandler
	Message *MessageHandler
	Health  *HealthHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Contact: NewContactHandler(svc.Contact),
		Message: NewMessageHandler(svc.Message),
		Health:  NewHealthHandler(svc.Health),
	}
}
