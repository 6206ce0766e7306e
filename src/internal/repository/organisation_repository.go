package repository

import (
	"context"
	"errors"

	"bank-portal-service/src/internal/entity"

	"gorm.io/gorm"
)

type OrganisationRepository struct{}

func NewOrganisationRepository() *OrganisationRepository {
	return &OrganisationRepository{}
}

// FindOrCreate reads the singleton organisation row, bootstrapping it on
// first access.
func (r *OrganisationRepository) FindOrCreate(ctx context.Context, db *gorm.DB) (*entity.Organisation, error) {
	var org entity.Organisation
	err := db.WithContext(ctx).First(&org, entity.OrganisationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		org = entity.Organisation{
			ID:   entity.OrganisationID,
			Name: "My Organisation",
		}
		if err := db.WithContext(ctx).Create(&org).Error; err != nil {
			return nil, err
		}
		return &org, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Increment applies relative changes to the three pools in one statement.
// Deltas may be negative for reversals and withdrawals.
func (r *OrganisationRepository) Increment(ctx context.Context, db *gorm.DB, amount, penalty, profit float64) error {
	return db.WithContext(ctx).Model(&entity.Organisation{}).
		Where("id = ?", entity.OrganisationID).
		UpdateColumns(map[string]interface{}{
			"amount":  gorm.Expr("amount + ?", amount),
			"penalty": gorm.Expr("penalty + ?", penalty),
			"profit":  gorm.Expr("profit + ?", profit),
		}).Error
}

func (r *OrganisationRepository) ResetProfit(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Model(&entity.Organisation{}).
		Where("id = ?", entity.OrganisationID).
		UpdateColumn("profit", 0).Error
}
