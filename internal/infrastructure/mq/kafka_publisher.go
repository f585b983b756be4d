package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mensajeria_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageWriter kafka.Writer 中用到的方法，测试中可替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher 创建 Kafka 发布器
// 以接收者别名作为 key，同一接收者的事件进入同一分区，保持顺序
func NewKafkaPublisher(cfg config.KafkaConfig) Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.HostPort),
		Topic:                  cfg.ChatTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.Timeout * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &kafkaPublisher{writer: writer}
}

func (k *kafkaPublisher) Publish(ctx context.Context, event MessageEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal message event: %w", err)
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RecipientAlias),
		Value: value,
		Time:  event.SentAt,
	})
}

func (k *kafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		zap.L().Error("close kafka writer", zap.Error(err))
		return err
	}
	return nil
}

// New 按配置创建发布器
func New(cfg config.KafkaConfig, bufferSize int) (Publisher, error) {
	switch cfg.MessageMode {
	case ModeChannel, "":
		return NewChannelPublisher(bufferSize, nil), nil
	case ModeKafka:
		return NewKafkaPublisher(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported message mode %q", cfg.MessageMode)
	}
}
