package repository

import (
	"context"

	"shipledger/internal/model"

	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(ctx context.Context, t *model.Transfer) error
}

type transferRepo struct{ db *gorm.DB }

func NewTransferRepository(db *gorm.DB) TransferRepository { return &transferRepo{db: db} }

func (r *transferRepo) Create(ctx context.Context, t *model.Transfer) error {
	return r.db.WithContext(ctx).Create(t).Error
}
