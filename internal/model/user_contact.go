package model

import "time"

// UserContact 有向联系人关系 owner -> contact
// (owner_alias, contact_alias) 为联合主键，重复插入被忽略
type UserContact struct {
	OwnerAlias   string    `gorm:"column:owner_alias;primaryKey;type:varchar(64);comment:所有者别名"`
	ContactAlias string    `gorm:"column:contact_alias;primaryKey;type:varchar(64);comment:联系人别名"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;comment:添加时间"`

	Owner   UserInfo `gorm:"foreignKey:OwnerAlias;references:Alias"`
	Contact UserInfo `gorm:"foreignKey:ContactAlias;references:Alias"`
}

func (UserContact) TableName() string {
	return "user_contact"
}
