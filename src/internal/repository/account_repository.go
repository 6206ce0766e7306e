package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Account, error) {
	var account entity.Account
	if err := db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint) (*entity.Account, error) {
	var account entity.Account
	if err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// IncrementTotalAmount applies a relative balance change so concurrent
// deposits never lose updates to a read-modify-write race.
func (r *AccountRepository) IncrementTotalAmount(ctx context.Context, db *gorm.DB, accountID uint, delta float64) error {
	return db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", accountID).
		UpdateColumn("total_amount", gorm.Expr("total_amount + ?", delta)).Error
}

func (r *AccountRepository) IncrementReleasedMoney(ctx context.Context, db *gorm.DB, accountID uint, delta float64) error {
	return db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", accountID).
		UpdateColumn("released_money", gorm.Expr("released_money + ?", delta)).Error
}

// CreditAll adds the same amount to every account, the audit fan-out write.
func (r *AccountRepository) CreditAll(ctx context.Context, db *gorm.DB, amount float64) error {
	return db.WithContext(ctx).Model(&entity.Account{}).
		Where("1 = 1").
		UpdateColumn("total_amount", gorm.Expr("total_amount + ?", amount)).Error
}

func (r *AccountRepository) CountByAccountNumber(ctx context.Context, db *gorm.DB, accountNumber string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Account{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error
	return count, err
}

type accountSums struct {
	TotalAmount   float64
	ReleasedMoney float64
}

// SumBalances returns Σ total_amount and Σ released_money across all accounts.
func (r *AccountRepository) SumBalances(ctx context.Context, db *gorm.DB) (totalAmount, releasedMoney float64, err error) {
	var sums accountSums
	err = db.WithContext(ctx).Model(&entity.Account{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(released_money), 0) AS released_money").
		Scan(&sums).Error
	return sums.TotalAmount, sums.ReleasedMoney, err
}
