package repository

import (
	"context"

	"shipledger/internal/model"

	"gorm.io/gorm"
)

type ReturnRepository interface {
	Create(ctx context.Context, ret *model.Return) error
}

type returnRepo struct{ db *gorm.DB }

func NewReturnRepository(db *gorm.DB) ReturnRepository { return &returnRepo{db: db} }

func (r *returnRepo) Create(ctx context.Context, ret *model.Return) error {
	return r.db.WithContext(ctx).Create(ret).Error
}
