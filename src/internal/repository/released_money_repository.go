package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type ReleasedMoneyRepository struct{}

func NewReleasedMoneyRepository() *ReleasedMoneyRepository {
	return &ReleasedMoneyRepository{}
}

func (r *ReleasedMoneyRepository) Create(ctx context.Context, db *gorm.DB, log *entity.ReleasedMoneyLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *ReleasedMoneyRepository) FindByAccountID(ctx context.Context, db *gorm.DB, accountID uint) ([]entity.ReleasedMoneyLog, error) {
	var logs []entity.ReleasedMoneyLog
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
