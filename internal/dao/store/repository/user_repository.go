package repository

import (
	"context"

	"mensajeria_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// EnsureExists INSERT ... ON CONFLICT DO NOTHING
// 并发创建同一用户时以先写入者的显示名称为准
func (r *userRepository) EnsureExists(ctx context.Context, alias, displayName string) error {
	user := model.UserInfo{Alias: alias, DisplayName: displayName}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		return wrapDBErrorf(err, "创建用户 alias=%s", alias)
	}
	return nil
}
