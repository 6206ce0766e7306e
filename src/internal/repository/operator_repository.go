package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type OperatorRepository struct{}

func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{}
}

func (r *OperatorRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.Operator, error) {
	var operator entity.Operator
	if err := db.WithContext(ctx).Where("username = ?", username).First(&operator).Error; err != nil {
		return nil, err
	}
	return &operator, nil
}
