package repository

import (
	"context"
	"strings"
	"time"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Create(ctx context.Context, db *gorm.DB, log *entity.TransactionLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *TransactionRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.TransactionLog, error) {
	var log entity.TransactionLog
	if err := db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.TransactionLog{}, id).Error
}

// Search applies the operator filters: case-insensitive name substring,
// account number substring, mobile substring and inclusive date bounds.
func (r *TransactionRepository) Search(ctx context.Context, db *gorm.DB, request *model.SearchTransactionRequest, start, end *time.Time) ([]entity.TransactionLog, int64, error) {
	query := db.WithContext(ctx).Model(&entity.TransactionLog{})

	if request.Name != "" || request.Mobile != "" {
		query = query.Joins("JOIN members ON members.id = transaction_logs.member_id")
		if request.Name != "" {
			query = query.Where("LOWER(members.name) LIKE ?", "%"+strings.ToLower(request.Name)+"%")
		}
		if request.Mobile != "" {
			query = query.Where("members.mobile LIKE ?", "%"+request.Mobile+"%")
		}
	}
	if request.AccountNumber != "" {
		query = query.
			Joins("JOIN accounts ON accounts.id = transaction_logs.account_id").
			Where("accounts.account_number LIKE ?", "%"+request.AccountNumber+"%")
	}
	if start != nil {
		query = query.Where("transaction_logs.created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("transaction_logs.created_at <= ?", *end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.TransactionLog
	err := query.
		Preload("Member").
		Preload("Account").
		Order("transaction_logs.created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&logs).Error
	return logs, total, err
}

func (r *TransactionRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint, limit int, start, end *time.Time) ([]entity.TransactionLog, error) {
	query := db.WithContext(ctx).
		Preload("Account").
		Where("member_id = ?", memberID).
		Order("created_at DESC")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var logs []entity.TransactionLog
	err := query.Find(&logs).Error
	return logs, err
}

// DistinctMemberIDsSince returns members who deposited on or after the
// given instant, used for the pending-deposit dashboard list.
func (r *TransactionRepository) DistinctMemberIDsSince(ctx context.Context, db *gorm.DB, since time.Time) ([]uint, error) {
	var ids []uint
	err := db.WithContext(ctx).Model(&entity.TransactionLog{}).
		Where("created_at >= ?", since).
		Distinct("member_id").
		Pluck("member_id", &ids).Error
	return ids, err
}

func (r *TransactionRepository) LastDepositAt(ctx context.Context, db *gorm.DB, memberID uint) (*time.Time, error) {
	var logs []entity.TransactionLog
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Limit(1).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0].CreatedAt, nil
}
