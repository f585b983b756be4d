// Package https_server 创建 Gin 引擎并配置中间件和路由
package https_server

import (
	"slices"

	"mensajeria_server/internal/config"
	"mensajeria_server/internal/handler"
	"mensajeria_server/internal/infrastructure/logger"
	"mensajeria_server/internal/infrastructure/middleware"
	"mensajeria_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 Gin 引擎
// 配置顺序：请求 ID -> 日志 -> panic 恢复 -> CORS -> (可选) TLS 重定向 -> 业务路由
func Init(cfg *config.Config, handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	if origins := cfg.SecurityConfig.AllowOrigins; len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
	engine.Use(cors.New(corsConfig))

	// 如果由 Nginx 处理 SSL 则保持关闭
	if cfg.SecurityConfig.TLSRedirect {
		engine.Use(middleware.TlsHandler(cfg.MainConfig.Host, cfg.MainConfig.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
