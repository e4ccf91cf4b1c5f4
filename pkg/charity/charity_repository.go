package charity

import (
	"context"

	"gorm.io/gorm"

	"foodbridge/entities"
)

type (
	CharityRepository interface {
		CreateCharity(ctx context.Context, charity *entities.Charity) error
		GetCharityByID(ctx context.Context, id string) (*entities.Charity, error)
		GetCharityByUserID(ctx context.Context, userID string) (*entities.Charity, error)
		GetApprovedCharities(ctx context.Context) ([]*entities.Charity, error)
		ExistsForUser(ctx context.Context, userID string) (bool, error)
	}

	charityRepository struct {
		db *gorm.DB
	}
)

func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) CreateCharity(ctx context.Context, charity *entities.Charity) error {
	return r.db.WithContext(ctx).Create(charity).Error
}

func (r *charityRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	var charity entities.Charity
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

func (r *charityRepository) GetCharityByUserID(ctx context.Context, userID string) (*entities.Charity, error) {
	var charity entities.Charity
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&charity).Error; err != nil {
		return nil, err
	}
	return &charity, nil
}

func (r *charityRepository) GetApprovedCharities(ctx context.Context) ([]*entities.Charity, error) {
	var charities []*entities.Charity
	if err := r.db.WithContext(ctx).
		Where("status = ? AND is_active = ?", entities.ApprovalApproved, true).
		Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}

func (r *charityRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Charity{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
