package handler

import (
	"fmt"
	"net/http"

	"mensajeria_server/internal/dto/request"
	"mensajeria_server/internal/dto/respond"
	"mensajeria_server/internal/service"
	"mensajeria_server/pkg/constants"

	"github.com/gin-gonic/gin"
)

// MessageHandler 消息请求处理器
type MessageHandler struct {
	messageSvc service.MessageService
}

// NewMessageHandler 创建消息处理器实例
func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// SendMessage 发送消息
// POST /messages
// 请求体: request.SendMessageRequest
// 响应: 纯文本发送结果；未送达时 400 "Error: <detail>"
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logParamError(c, err)
		HandleText(c, http.StatusBadRequest, constants.MsgMissingFields)
		return
	}

	rsp, err := h.messageSvc.SendMessage(c.Request.Context(), req.Usuario, req.Contacto, req.Mensaje)
	if err != nil {
		HandleError(c, err, false)
		return
	}
	if !rsp.Delivered {
		HandleText(c, http.StatusBadRequest, constants.MsgErrorPrefix+rsp.Detail)
		return
	}
	HandleText(c, http.StatusOK, rsp.Detail)
}

// ListReceived 获取收到的消息
// GET /messages?ownerAlias=xxx
// 响应: 纯文本，每行 `<发送者> te escribió "<正文>" el dd/mm/yy.`
func (h *MessageHandler) ListReceived(c *gin.Context) {
	param := aliasParam(c)
	owner := c.Query(param)
	if owner == "" {
		HandleMissingParam(c, param)
		return
	}

	messages, err := h.messageSvc.ListReceivedMessages(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err, false)
		return
	}
	HandleLines(c, FormatReceived(messages))
}

// FormatReceived 日期按存储时的时区格式化，不做转换
func FormatReceived(messages []respond.ReceivedMessageRespond) []string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf(constants.ReceivedLineFmt,
			m.SenderDisplayName, m.Body, m.SentAt.Format(constants.ReceivedDateLayout)))
	}
	return lines
}
