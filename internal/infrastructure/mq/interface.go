// Package mq 在消息持久化之后对外投递消息事件
// channel 模式在进程内消费并记录日志，kafka 模式写入 Kafka 主题
package mq

import (
	"context"
	"time"
)

// 投递模式
const (
	ModeChannel = "channel"
	ModeKafka   = "kafka"
)

// MessageEvent 消息已写入存储后产生的事件
type MessageEvent struct {
	ID             uint64    `json:"id"`
	SenderAlias    string    `json:"sender_alias"`
	RecipientAlias string    `json:"recipient_alias"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

// Publisher 消息事件发布接口
// Publish 失败不影响消息本身，调用方只记录日志
type Publisher interface {
	Publish(ctx context.Context, event MessageEvent) error
	Close() error
}
