// Package handler 提供 HTTP 请求处理器
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

// ContactHandler 联系人请求处理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 创建联系人处理器实例
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// ListContacts 获取联系人列表
// GET /contacts?ownerAlias=xxx
// 响应: 纯文本，每行 "alias: displayName"
func (h *ContactHandler) ListContacts(c *gin.Context) {
	param := aliasParam(c)
	owner := c.Query(param)
	if owner == "" {
		HandleMissingParam(c, param)
		return
	}

	contacts, err := h.contactSvc.ListContacts(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err, false)
		return
	}
	HandleLines(c, FormatContacts(contacts))
}

// AddContact 添加联系人
// POST /contacts/:ownerAlias
// 请求体: request.AddContactRequest
// 响应: {"success": true}
func (h *ContactHandler) AddContact(c *gin.Context) {
	owner := c.Param("ownerAlias")

	var req request.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logParamError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.MsgMissingContact})
		return
	}

	ok, err := h.contactSvc.AddContact(c.Request.Context(), owner, req.Contacto, req.Nombre)
	if err != nil {
		HandleError(c, err, true)
		return
	}
	c.JSON(http.StatusOK, respond.AddContactRespond{Success: ok})
}

// FormatContacts 每个联系人一行 "alias: displayName"
func FormatContacts(contacts []respond.ContactRespond) []string {
	lines := make([]string, 0, len(contacts))
	for _, ct := range contacts {
		lines = append(lines, fmt.Sprintf("%s: %s", ct.Alias, ct.DisplayName))
	}
	return lines
}

// aliasParam 当前路由使用的查询参数名，默认 ownerAlias
func aliasParam(c *gin.Context) string {
	if p := c.GetString(constants.CtxAliasParam); p != "" {
		return p
	}
	return constants.OwnerAliasParam
}

// WithAliasParam 为路由组指定查询参数名（兼容接口使用 mialias）
func WithAliasParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.CtxAliasParam, param)
		c.Next()
	}
}
