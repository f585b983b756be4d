package respond

import "time"

// SendMessageRespond 发送结果
// Delivered=false 时 Detail 说明原因，且没有写入任何消息
type SendMessageRespond struct {
	Delivered bool   `json:"delivered"`
	Detail    string `json:"detail"`
}

// ReceivedMessageRespond 收到的消息
type ReceivedMessageRespond struct {
	SenderAlias       string    `json:"senderAlias"`
	SenderDisplayName string    `json:"senderDisplayName"`
	Body              string    `json:"body"`
	SentAt            time.Time `json:"sentAt"`
}
