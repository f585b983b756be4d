package contact

import (
	"context"

	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/dto/respond"
	"mensajeria_server/pkg/errorx"

	"go.uber.org/zap"
)

// contactService 联系人业务逻辑实现
type contactService struct {
	repos *repository.Repositories
}

// NewContactService 构造函数
func NewContactService(repos *repository.Repositories) *contactService {
	return &contactService{repos: repos}
}

// ListContacts 获取 owner 的联系人
// owner 不存在或没有联系人时返回空列表
func (s *contactService) ListContacts(ctx context.Context, ownerAlias string) ([]respond.ContactRespond, error) {
	if ownerAlias == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "ownerAlias 不能为空")
	}

	rows, err := s.repos.Contact.FindByOwner(ctx, ownerAlias)
	if err != nil {
		zap.L().Error("find contacts error", zap.String("owner", ownerAlias), zap.Error(err))
		return nil, err
	}

	rsp := make([]respond.ContactRespond, 0, len(rows))
	for _, r := range rows {
		rsp = append(rsp, respond.ContactRespond{Alias: r.Alias, DisplayName: r.DisplayName})
	}
	return rsp, nil
}

// AddContact 在一个事务中依次：
//  1. 确保 owner 用户存在（新建时显示名称等于别名）
//  2. 确保 contact 用户存在（新建时使用传入的显示名称，已存在则不覆盖）
//  3. 插入 owner -> contact 关系（已存在则忽略）
func (s *contactService) AddContact(ctx context.Context, ownerAlias, contactAlias, contactDisplayName string) (bool, error) {
	if ownerAlias == "" || contactAlias == "" || contactDisplayName == "" {
		return false, errorx.New(errorx.CodeInvalidParam, "ownerAlias、contactAlias 和 displayName 不能为空")
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.EnsureExists(ctx, ownerAlias, ownerAlias); err != nil {
			return err
		}
		if err := tx.User.EnsureExists(ctx, contactAlias, contactDisplayName); err != nil {
			return err
		}
		return tx.Contact.CreateIfAbsent(ctx, ownerAlias, contactAlias)
	})
	if err != nil {
		zap.L().Error("add contact error",
			zap.String("owner", ownerAlias),
			zap.String("contact", contactAlias),
			zap.Error(err))
		return false, err
	}
	return true, nil
}
