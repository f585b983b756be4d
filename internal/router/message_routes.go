package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes 注册消息相关路由
func (rt *Router) RegisterMessageRoutes(rg *gin.RouterGroup) {
	messageGroup := rg.Group("/messages")
	{
		messageGroup.POST("", rt.handlers.Message.SendMessage) // 发送消息
		messageGroup.GET("", rt.handlers.Message.ListReceived) // 收到的消息
	}
}
