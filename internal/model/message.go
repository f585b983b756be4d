package model

import "time"

// Message 消息模型，对应 message 表
// 只有 sender -> recipient 联系人关系存在时才能创建；创建后不可修改
type Message struct {
	// ID 自增主键，单调递增，也用于同一时间戳下的排序
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`

	SenderAlias    string `gorm:"column:sender_alias;index;type:varchar(64);not null;comment:发送者别名"`
	RecipientAlias string `gorm:"column:recipient_alias;index;type:varchar(64);not null;comment:接收者别名"`

	// Body 消息正文，不能为空
	Body string `gorm:"column:body;type:text;not null;comment:消息内容"`

	// SentAt 发送时间，为零值时插入当前时间
	SentAt time.Time `gorm:"column:sent_at;index;autoCreateTime;not null;comment:发送时间"`

	Sender    UserInfo `gorm:"foreignKey:SenderAlias;references:Alias"`
	Recipient UserInfo `gorm:"foreignKey:RecipientAlias;references:Alias"`
}

func (Message) TableName() string {
	return "message"
}
