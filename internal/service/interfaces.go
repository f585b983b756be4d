// Package service 定义业务层接口，供 Handler 层调用
package service

import (
	"context"

	"mensajeria_server/internal/dto/respond"
)

// ContactService 联系人业务接口
type ContactService interface {
	// ListContacts 获取 owner 的联系人（不含自己），按别名排序
	ListContacts(ctx context.Context, ownerAlias string) ([]respond.ContactRespond, error)
	// AddContact 添加有向联系人，必要时隐式创建双方用户
	AddContact(ctx context.Context, ownerAlias, contactAlias, contactDisplayName string) (bool, error)
}

// MessageService 消息业务接口
type MessageService interface {
	// SendMessage 向联系人发送消息
	SendMessage(ctx context.Context, senderAlias, recipientAlias, body string) (*respond.SendMessageRespond, error)
	// ListReceivedMessages 获取收到的消息，最新的在前
	ListReceivedMessages(ctx context.Context, recipientAlias string) ([]respond.ReceivedMessageRespond, error)
}

// HealthService 存储健康检查
type HealthService interface {
	Ping(ctx context.Context) error
}
