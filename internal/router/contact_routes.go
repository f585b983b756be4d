package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系人相关路由
func (rt *Router) RegisterContactRoutes(rg *gin.RouterGroup) {
	contactGroup := rg.Group("/contacts")
	{
		contactGroup.GET("", rt.handlers.Contact.ListContacts)            // 联系人列表
		contactGroup.POST("/:ownerAlias", rt.handlers.Contact.AddContact) // 添加联系人
	}
}
