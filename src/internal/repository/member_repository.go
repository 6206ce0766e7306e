package repository

import (
	"context"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *entity.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) Update(ctx context.Context, db *gorm.DB, member *entity.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

func (r *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Member, error) {
	var member entity.Member
	if err := db.WithContext(ctx).Preload("Account").First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Member, error) {
	var members []entity.Member
	err := db.WithContext(ctx).Preload("Account").Order("created_at DESC").Find(&members).Error
	return members, err
}

// FindAllWithActiveLoans loads every member with account and any ACTIVE loan,
// ordered by name, the projection the report read side works from.
func (r *MemberRepository) FindAllWithActiveLoans(ctx context.Context, db *gorm.DB) ([]entity.Member, error) {
	var members []entity.Member
	err := db.WithContext(ctx).
		Preload("Account").
		Preload("Loans", "status = ?", entity.LoanStatusActive).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *MemberRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Member{}).Count(&count).Error
	return count, err
}
