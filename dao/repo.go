package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各实体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count, err
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	count, err := r.FindCount(ctx, where, args...)
	return count > 0, err
}

func (r *Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return r.Model(ctx).Where("id = ?", id).Updates(data).Error
}

func (r *Repo[T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(f)
}
