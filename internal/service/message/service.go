package message

import (
	"context"

	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/dto/respond"
	"mensajeria_server/internal/infrastructure/mq"
	"mensajeria_server/internal/model"
	"mensajeria_server/pkg/constants"
	"mensajeria_server/pkg/errorx"

	"go.uber.org/zap"
)

// messageService 消息业务逻辑实现
type messageService struct {
	repos     *repository.Repositories
	publisher mq.Publisher
}

// NewMessageService 构造函数，publisher 可以为 nil
func NewMessageService(repos *repository.Repositories, publisher mq.Publisher) *messageService {
	return &messageService{repos: repos, publisher: publisher}
}

// SendMessage 发送消息
// 接收者不在发送者联系人列表中时返回 Delivered=false，不写入任何数据
func (m *messageService) SendMessage(ctx context.Context, senderAlias, recipientAlias, body string) (*respond.SendMessageRespond, error) {
	if senderAlias == "" || recipientAlias == "" || body == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "sender、recipient 和 body 不能为空")
	}

	var msg *model.Message
	err := m.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		ok, err := tx.Contact.Exists(ctx, senderAlias, recipientAlias)
		if err != nil {
			return err
		}
		if !ok {
			return errorx.New(errorx.CodeNotContact, constants.MsgNotInContactList)
		}
		msg = &model.Message{
			SenderAlias:    senderAlias,
			RecipientAlias: recipientAlias,
			Body:           body,
		}
		return tx.Message.Create(ctx, msg)
	})
	if errorx.Is(err, errorx.CodeNotContact) {
		return &respond.SendMessageRespond{Delivered: false, Detail: constants.MsgNotInContactList}, nil
	}
	if err != nil {
		zap.L().Error("send message error",
			zap.String("sender", senderAlias),
			zap.String("recipient", recipientAlias),
			zap.Error(err))
		return nil, err
	}

	m.publish(ctx, msg)
	return &respond.SendMessageRespond{Delivered: true, Detail: constants.MsgMessageSent}, nil
}

// publish 投递消息事件，失败只记日志
func (m *messageService) publish(ctx context.Context, msg *model.Message) {
	if m.publisher == nil {
		return
	}
	ev := mq.MessageEvent{
		ID:             msg.ID,
		SenderAlias:    msg.SenderAlias,
		RecipientAlias: msg.RecipientAlias,
		Body:           msg.Body,
		SentAt:         msg.SentAt,
	}
	if err := m.publisher.Publish(ctx, ev); err != nil {
		zap.L().Warn("publish message event error",
			zap.Uint64("id", msg.ID),
			zap.Error(errorx.Wrap(err, errorx.CodePublishError, "投递消息事件")))
	}
}

// ListReceivedMessages 获取收到的消息，附带发送者当前显示名称
func (m *messageService) ListReceivedMessages(ctx context.Context, recipientAlias string) ([]respond.ReceivedMessageRespond, error) {
	if recipientAlias == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "recipientAlias 不能为空")
	}

	rows, err := m.repos.Message.FindReceived(ctx, recipientAlias)
	if err != nil {
		zap.L().Error("find received messages error", zap.String("recipient", recipientAlias), zap.Error(err))
		return nil, err
	}

	rsp := make([]respond.ReceivedMessageRespond, 0, len(rows))
	for _, r := range rows {
		rsp = append(rsp, respond.ReceivedMessageRespond{
			SenderAlias:       r.SenderAlias,
			SenderDisplayName: r.SenderDisplayName,
			Body:              r.Body,
			SentAt:            r.SentAt,
		})
	}
	return rsp, nil
}
