package repository

import (
	"context"
	"time"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type LoanPaymentRepository struct{}

func NewLoanPaymentRepository() *LoanPaymentRepository {
	return &LoanPaymentRepository{}
}

func (r *LoanPaymentRepository) Create(ctx context.Context, db *gorm.DB, payment *entity.LoanPayment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *LoanPaymentRepository) FindWithLoan(ctx context.Context, db *gorm.DB, id uint) (*entity.LoanPayment, error) {
	var payment entity.LoanPayment
	if err := db.WithContext(ctx).Preload("Loan").First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *LoanPaymentRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.LoanPayment{}, id).Error
}

// FindByMemberID lists payments across all of a member's loans, newest
// first, optionally bounded by an inclusive date range.
func (r *LoanPaymentRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint, start, end *time.Time) ([]entity.LoanPayment, error) {
	query := db.WithContext(ctx).
		Joins("JOIN loans ON loans.id = loan_payments.loan_id").
		Where("loans.member_id = ?", memberID).
		Preload("Loan").
		Order("loan_payments.created_at DESC")
	if start != nil {
		query = query.Where("loan_payments.created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("loan_payments.created_at <= ?", *end)
	}
	var payments []entity.LoanPayment
	err := query.Find(&payments).Error
	return payments, err
}
