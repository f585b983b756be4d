// Package store 提供数据访问层的初始化
// 负责按配置选择驱动、建立连接、创建缺失的表并返回 Repository 层
package store

import (
	"fmt"
	"time"

	"mensajeria_server/internal/config"
	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/infrastructure/logger"
	"mensajeria_server/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 支持的驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// dialector 根据驱动名构造 gorm Dialector
func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite, "":
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// Open 建立数据库连接并创建缺失的表
// 表已存在时不做迁移，只补建缺失的表和索引
func Open(cfg config.StoreConfig, dsn string) (*gorm.DB, error) {
	start := time.Now()

	dial, err := dialector(cfg.Driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.NewGormLogger(zap.L().Named("gorm"), gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if maxOpen := maxOpenConns(cfg); maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns(maxOpen)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.UserInfo{},    // 用户表
		&model.UserContact{}, // 联系人关系表
		&model.Message{},     // 消息表
	); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	zap.L().Info("database initialization complete",
		zap.String("driver", cfg.Driver),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return db, nil
}

// maxOpenConns sqlite 只允许单写者，多连接并发写会直接返回 database is locked
// 因此 sqlite 固定为一个连接，事务之间排队执行
func maxOpenConns(cfg config.StoreConfig) int {
	if cfg.Driver == DriverSQLite {
		return 1
	}
	return cfg.MaxOpenConns
}

// Init 按全局配置初始化存储，返回 Repository 聚合
// MENSAJERIA_ENV=test 时连接测试库
func Init(cfg config.StoreConfig) (*repository.Repositories, error) {
	db, err := Open(cfg, cfg.ActiveDSN())
	if err != nil {
		return nil, err
	}
	return repository.NewRepositories(db), nil
}
