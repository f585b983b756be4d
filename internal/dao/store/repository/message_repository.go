package repository

import (
	"context"

	"mensajeria_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息 Repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 创建消息
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error; err != nil {
		return wrapDBErrorf(err, "创建消息 sender=%s recipient=%s", message.SenderAlias, message.RecipientAlias)
	}
	return nil
}

// FindReceived 按发送时间倒序，时间相同时后插入的在前
func (r *messageRepository) FindReceived(ctx context.Context, recipientAlias string) ([]ReceivedRow, error) {
	rows := make([]ReceivedRow, 0)
	err := r.db.WithContext(ctx).
		Table("message AS m").
		Select("m.id AS id, m.sender_alias AS sender_alias, u.display_name AS sender_display_name, m.body AS body, m.sent_at AS sent_at").
		Joins("JOIN user_info AS u ON m.sender_alias = u.alias").
		Where("m.recipient_alias = ?", recipientAlias).
		Order("m.sent_at DESC").
		Order("m.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询收到的消息 recipient=%s", recipientAlias)
	}
	return rows, nil
}
