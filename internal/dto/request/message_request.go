package request

// SendMessageRequest 发送消息请求体
// POST /messages
type SendMessageRequest struct {
	Usuario  string `json:"usuario" binding:"required"`  // 发送者别名
	Contacto string `json:"contacto" binding:"required"` // 接收者别名
	Mensaje  string `json:"mensaje" binding:"required"`  // 消息正文
}
