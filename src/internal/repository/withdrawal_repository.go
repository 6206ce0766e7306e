package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"gorm.io/gorm"
)

type WithdrawalRepository struct{}

func NewWithdrawalRepository() *WithdrawalRepository {
	return &WithdrawalRepository{}
}

func (r *WithdrawalRepository) Create(ctx context.Context, db *gorm.DB, withdrawal *entity.OrgWithdrawal) error {
	return db.WithContext(ctx).Create(withdrawal).Error
}

func (r *WithdrawalRepository) Search(ctx context.Context, db *gorm.DB, request *model.SearchWithdrawalRequest) ([]entity.OrgWithdrawal, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&entity.OrgWithdrawal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var withdrawals []entity.OrgWithdrawal
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&withdrawals).Error
	return withdrawals, total, err
}
