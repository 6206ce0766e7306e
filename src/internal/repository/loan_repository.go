package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"gorm.io/gorm"
)

type LoanRepository struct{}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{}
}

func (r *LoanRepository) Create(ctx context.Context, db *gorm.DB, loan *entity.Loan) error {
	return db.WithContext(ctx).Create(loan).Error
}

func (r *LoanRepository) Update(ctx context.Context, db *gorm.DB, loan *entity.Loan) error {
	return db.WithContext(ctx).Save(loan).Error
}

func (r *LoanRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Loan, error) {
	var loan entity.Loan
	if err := db.WithContext(ctx).First(&loan, id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) FindWithPayments(ctx context.Context, db *gorm.DB, id uint) (*entity.Loan, error) {
	var loan entity.Loan
	err := db.WithContext(ctx).
		Preload("Member").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// FindActiveByMemberID returns the member's ACTIVE loan, or nil when there
// is none (at most one exists by invariant).
func (r *LoanRepository) FindActiveByMemberID(ctx context.Context, db *gorm.DB, memberID uint) (*entity.Loan, error) {
	var loans []entity.Loan
	err := db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, entity.LoanStatusActive).
		Limit(1).
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, nil
	}
	return &loans[0], nil
}

func (r *LoanRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID uint, limit int) ([]entity.Loan, error) {
	query := db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("member_id = ?", memberID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var loans []entity.Loan
	err := query.Find(&loans).Error
	return loans, err
}

func (r *LoanRepository) Search(ctx context.Context, db *gorm.DB, request *model.SearchLoanRequest) ([]entity.Loan, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Loan{})
	if request.Status != "" {
		query = query.Where("status = ?", request.Status)
	}
	if request.MemberID != 0 {
		query = query.Where("member_id = ?", request.MemberID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var loans []entity.Loan
	err := query.
		Preload("Member").
		Order("created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&loans).Error
	return loans, total, err
}

// SumActiveRemaining is the principal currently tied up in active loans.
func (r *LoanRepository) SumActiveRemaining(ctx context.Context, db *gorm.DB) (float64, error) {
	var sum float64
	err := db.WithContext(ctx).Model(&entity.Loan{}).
		Where("status = ?", entity.LoanStatusActive).
		Select("COALESCE(SUM(remaining_balance), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *LoanRepository) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Loan{}).
		Where("status = ?", entity.LoanStatusActive).
		Count(&count).Error
	return count, err
}
