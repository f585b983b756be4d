package mq

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrPublisherClosed 发布器已关闭
var ErrPublisherClosed = errors.New("publisher closed")

// ErrChannelFull 缓冲区已满
var ErrChannelFull = errors.New("event channel full")

// channelPublisher 进程内发布器
// 事件写入带缓冲的 channel，由单独的 goroutine 交给 handle 处理
type channelPublisher struct {
	events chan MessageEvent
	handle func(MessageEvent)
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewChannelPublisher 创建进程内发布器，handle 为 nil 时只记录日志
func NewChannelPublisher(size int, handle func(MessageEvent)) Publisher {
	if handle == nil {
		handle = logEvent
	}
	p := &channelPublisher{
		events: make(chan MessageEvent, size),
		handle: handle,
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *channelPublisher) run() {
	defer close(p.done)
	for ev := range p.events {
		p.handle(ev)
	}
}

// Publish 非阻塞写入，缓冲区满时返回 ErrChannelFull
func (p *channelPublisher) Publish(ctx context.Context, event MessageEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrChannelFull
	}
}

// Close 停止接收新事件并等待缓冲区中的事件处理完
func (p *channelPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	<-p.done
	return nil
}

func logEvent(ev MessageEvent) {
	zap.L().Info("message delivered",
		zap.Uint64("id", ev.ID),
		zap.String("sender", ev.SenderAlias),
		zap.String("recipient", ev.RecipientAlias),
		zap.Time("sentAt", ev.SentAt),
	)
}
