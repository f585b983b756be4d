package repository

import (
	"context"

	"mensajeria_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人 Repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Exists 判断 owner -> contact 关系是否存在
func (r *contactRepository) Exists(ctx context.Context, ownerAlias, contactAlias string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserContact{}).
		Where("owner_alias = ? AND contact_alias = ?", ownerAlias, contactAlias).
		Count(&n).Error
	if err != nil {
		return false, wrapDBErrorf(err, "查询联系人关系 owner=%s contact=%s", ownerAlias, contactAlias)
	}
	return n > 0, nil
}

// CreateIfAbsent 插入联系人关系，联合主键冲突时忽略
func (r *contactRepository) CreateIfAbsent(ctx context.Context, ownerAlias, contactAlias string) error {
	link := model.UserContact{OwnerAlias: ownerAlias, ContactAlias: contactAlias}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return wrapDBErrorf(err, "创建联系人关系 owner=%s contact=%s", ownerAlias, contactAlias)
	}
	return nil
}

// FindByOwner 联表 user_info 查询联系人，自链接被排除，按别名升序
func (r *contactRepository) FindByOwner(ctx context.Context, ownerAlias string) ([]ContactRow, error) {
	rows := make([]ContactRow, 0)
	err := r.db.WithContext(ctx).
		Table("user_info AS u").
		Select("u.alias AS alias, u.display_name AS display_name").
		Joins("JOIN user_contact AS c ON u.alias = c.contact_alias").
		Where("c.owner_alias = ? AND u.alias <> ?", ownerAlias, ownerAlias).
		Order("u.alias ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询联系人列表 owner=%s", ownerAlias)
	}
	return rows, nil
}
