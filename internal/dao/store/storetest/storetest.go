// Package storetest 为测试提供带种子数据的临时 sqlite 存储
package storetest

import (
	"path/filepath"
	"testing"

	"mensajeria_server/internal/config"
	"mensajeria_server/internal/dao/store"
	"mensajeria_server/internal/dao/store/repository"
	"mensajeria_server/internal/model"

	"gorm.io/gorm"
)

// SeedUsers 种子用户
var SeedUsers = []model.UserInfo{
	{Alias: "cpaz", DisplayName: "Christian"},
	{Alias: "lmunoz", DisplayName: "Luisa"},
	{Alias: "mgrau", DisplayName: "Miguel"},
}

// SeedContacts 种子联系人关系
var SeedContacts = []model.UserContact{
	{OwnerAlias: "cpaz", ContactAlias: "lmunoz"},
	{OwnerAlias: "cpaz", ContactAlias: "mgrau"},
	{OwnerAlias: "lmunoz", ContactAlias: "mgrau"},
	{OwnerAlias: "mgrau", ContactAlias: "cpaz"},
}

// Open 在临时目录创建空库，测试结束时关闭
func Open(t testing.TB) (*gorm.DB, *repository.Repositories) {
	t.Helper()
	cfg := config.Default().StoreConfig
	cfg.Driver = store.DriverSQLite
	cfg.DSN = filepath.Join(t.TempDir(), "mensajeria_test.db")
	db, err := store.Open(cfg, cfg.DSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	repos := repository.NewRepositories(db)
	t.Cleanup(func() { _ = repos.Close() })
	return db, repos
}

// OpenSeeded 创建空库并写入种子数据
func OpenSeeded(t testing.TB) (*gorm.DB, *repository.Repositories) {
	t.Helper()
	db, repos := Open(t)
	users := append([]model.UserInfo(nil), SeedUsers...)
	contacts := append([]model.UserContact(nil), SeedContacts...)
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := db.Omit("Owner", "Contact").Create(&contacts).Error; err != nil {
		t.Fatalf("seed contacts: %v", err)
	}
	return db, repos
}

// CountRows 统计 mdl 对应表中满足条件的行数，query 为空时统计全表
func CountRows(t testing.TB, db *gorm.DB, mdl any, query string, args ...any) int64 {
	t.Helper()
	tx := db.Model(mdl)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// FindUser 按别名读取用户，不存在时测试失败
func FindUser(t testing.TB, db *gorm.DB, alias string) model.UserInfo {
	t.Helper()
	var user model.UserInfo
	if err := db.First(&user, "alias = ?", alias).Error; err != nil {
		t.Fatalf("find user %s: %v", alias, err)
	}
	return user
}
