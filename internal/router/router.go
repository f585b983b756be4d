// Package router 提供 HTTP 路由注册
package router

import (
	"mensajeria_server/internal/handler"
	"mensajeria_server/pkg/constants"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", rt.handlers.Health.Healthz)

	rt.RegisterContactRoutes(r.Group(""))
	rt.RegisterMessageRoutes(r.Group(""))

	// 兼容旧客户端：/mensajeria 前缀，查询参数为 mialias
	legacy := r.Group("/mensajeria", handler.WithAliasParam(constants.LegacyAliasParam))
	rt.RegisterLegacyRoutes(legacy)
}

// RegisterLegacyRoutes 旧版接口
func (rt *Router) RegisterLegacyRoutes(rg *gin.RouterGroup) {
	rg.GET("/contactos", rt.handlers.Contact.ListContacts)
	rg.POST("/contactos/:ownerAlias", rt.handlers.Contact.AddContact)
	rg.POST("/enviar", rt.handlers.Message.SendMessage)
	rg.GET("/recibidos", rt.handlers.Message.ListReceived)
}
