package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mensajeria_server/internal/config"
	"mensajeria_server/internal/dao/store"
	"mensajeria_server/internal/handler"
	"mensajeria_server/internal/https_server"
	"mensajeria_server/internal/infrastructure/logger"
	"mensajeria_server/internal/infrastructure/mq"
	"mensajeria_server/internal/service"
	"mensajeria_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	zap.L().Info("日志初始化成功", zap.Bool("testMode", config.IsTestMode()))

	if conf.MainConfig.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. 校验器翻译
	if err := handler.InitTrans("es"); err != nil {
		zap.L().Fatal("初始化校验器翻译失败", zap.Error(err))
	}

	// 4. 初始化存储
	repos, err := store.Init(conf.StoreConfig)
	if err != nil {
		zap.L().Fatal("存储初始化失败", zap.Error(err))
	}
	zap.L().Info("存储初始化成功", zap.String("driver", conf.StoreConfig.Driver))

	// 5. 初始化消息事件发布
	publisher, err := mq.New(conf.KafkaConfig, constants.CHANNEL_SIZE)
	if err != nil {
		zap.L().Fatal("消息发布器初始化失败", zap.Error(err))
	}
	zap.L().Info("消息发布器初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 6. Service / Handler (依赖注入)
	services := service.NewServices(repos, publisher)
	handlers := handler.NewHandlers(services)

	// 7. HTTP 服务器
	engine := https_server.Init(conf, handlers)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("服务器关闭超时", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zap.L().Error("关闭消息发布器失败", zap.Error(err))
	}
	if err := repos.Close(); err != nil {
		zap.L().Error("关闭数据库连接失败", zap.Error(err))
	}

	zap.L().Info("服务器已关闭")
}
