package repository

import (
	"context"
	"time"

	"mensajeria_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// EnsureExists 用户不存在时创建，已存在时不修改显示名称
	EnsureExists(ctx context.Context, alias, displayName string) error
}

// ContactRow 联系人列表行（联表用户显示名称）
type ContactRow struct {
	Alias       string
	DisplayName string
}

// ContactRepository 有向联系人关系数据访问接口
type ContactRepository interface {
	// Exists 判断 owner -> contact 关系是否存在
	Exists(ctx context.Context, ownerAlias, contactAlias string) (bool, error)
	// CreateIfAbsent 插入关系，已存在时忽略
	CreateIfAbsent(ctx context.Context, ownerAlias, contactAlias string) error
	// FindByOwner 查找 owner 的联系人（排除自己），按别名升序
	FindByOwner(ctx context.Context, ownerAlias string) ([]ContactRow, error)
}

// ReceivedRow 收件列表行（联表发送者当前显示名称）
type ReceivedRow struct {
	ID                uint64
	SenderAlias       string
	SenderDisplayName string
	Body              string
	SentAt            time.Time
}

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	// Create 创建消息，SentAt 为零值时使用当前时间
	Create(ctx context.Context, message *model.Message) error
	// FindReceived 查找发给 recipient 的全部消息，最新的在前
	FindReceived(ctx context.Context, recipientAlias string) ([]ReceivedRow, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db      *gorm.DB
	User    UserRepository
	Contact ContactRepository
	Message MessageRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:      db,
		User:    NewUserRepository(db),
		Contact: NewContactRepository(db),
		Message: NewMessageRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// fn 返回错误或 panic 时回滚，连接在所有路径上都会归还连接池
func (r *Repositories) Transaction(ctx context.Context, fn func(txRepos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Ping 检查存储是否可用
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return wrapDBError(err, "获取数据库连接")
	}
	return wrapDBError(sqlDB.PingContext(ctx), "ping 数据库")
}

// Close 关闭底层连接池
func (r *Repositories) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return wrapDBError(err, "获取数据库连接")
	}
	return sqlDB.Close()
}
