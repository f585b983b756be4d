// Package model 定义数据库实体模型
package model

// UserInfo 用户信息模型，对应 user_info 表
// 用户在首次作为联系人所有者或联系人出现时隐式创建，从不删除
type UserInfo struct {
	// Alias 用户别名，全局唯一且创建后不可修改
	Alias string `gorm:"column:alias;primaryKey;type:varchar(64);comment:用户别名"`

	// DisplayName 显示名称，不能为空
	DisplayName string `gorm:"column:display_name;type:varchar(128);not null;comment:显示名称"`
}

// TableName 指定表名
func (UserInfo) TableName() string {
	return "user_info"
}
