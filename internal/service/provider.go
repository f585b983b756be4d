package service

import (
	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/infrastructure/mq"
	"mensajeria_server/internal/service/contact"
	"mensajeria_server/internal/service/message"
)

// Services 聚合所有 Service 实例
type Services struct {
	Contact ContactService
	Message MessageService
	Health  HealthService
}

// NewServices 创建并注入所有 Service 实例
func NewServices(repos *repository.Repositories, publisher mq.Publisher) *Services {
	return &Services{
		Contact: contact.NewContactService(repos),
		Message: message.NewMessageService(repos, publisher),
		Health:  repos,
	}
}
