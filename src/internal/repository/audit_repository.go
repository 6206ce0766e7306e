package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Create(ctx context.Context, db *gorm.DB, audit *entity.AuditLog) error {
	return db.WithContext(ctx).Create(audit).Error
}

func (r *AuditRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.AuditLog, error) {
	var audits []entity.AuditLog
	err := db.WithContext(ctx).Order("created_at DESC").Find(&audits).Error
	return audits, err
}
