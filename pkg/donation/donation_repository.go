package donation

import (
	"context"

	"gorm.io/gorm"

	"foodbridge/entities"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		// GetDonationByID resolves only non-deleted donations; soft-deleted
		// rows are reachable through GetAnyDonationByID for admin and
		// audit paths.
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetAnyDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonation(ctx context.Context, donation *entities.Donation) error
		SoftDeleteDonation(ctx context.Context, id string) error
		UpdateDonationStatus(ctx context.Context, id string, status entities.DonationStatus) error

		GetRestaurantDonations(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Donation, int64, error)
		GetAvailableDonations(ctx context.Context, page, limit int) ([]*entities.Donation, int64, error)
		GetDiscoverableDonations(ctx context.Context) ([]*entities.Donation, error)
		GetDonationsForAdmin(ctx context.Context, page, limit int, status entities.DonationStatus, searchTerm string) ([]*entities.Donation, int64, error)
		HasConfirmedReservation(ctx context.Context, donationID string) (bool, error)

		AddDonationImage(ctx context.Context, image *entities.DonationImage) error
		GetDonationImage(ctx context.Context, imageID string) (*entities.DonationImage, error)
		DemotePrimaryImages(ctx context.Context, donationID string) error
		SoftDeleteDonationImage(ctx context.Context, imageID string) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Restaurant.User").
		Preload("Images", "deleted = ?", false).
		Where("id = ? AND deleted = ?", id, false).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetAnyDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("Images").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) SoftDeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}

func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, status entities.DonationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) GetRestaurantDonations(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("restaurant_id = ? AND deleted = ?", restaurantID, false).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Images", "deleted = ?", false).
		Where("restaurant_id = ? AND deleted = ?", restaurantID, false).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// availableQuery narrows to donations a charity may discover: stored status
// Available, expiry still in the future, not deleted, owned by an approved
// active restaurant. The expiry predicate is mandatory because expired
// donations keep status=Available in storage.
func (r *donationRepository) availableQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Joins("JOIN restaurants ON restaurants.id = donations.restaurant_id").
		Where("donations.status = ? AND donations.expiry_date_time > NOW() AND donations.deleted = ?", entities.DonationAvailable, false).
		Where("restaurants.status = ? AND restaurants.is_active = ?", entities.ApprovalApproved, true)
}

func (r *donationRepository) GetAvailableDonations(ctx context.Context, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.availableQuery(ctx).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.availableQuery(ctx).
		Preload("Restaurant").
		Preload("Images", "deleted = ?", false).
		Order("donations.expiry_date_time ASC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// GetDiscoverableDonations materializes the full available set with
// restaurant coordinates; proximity filtering and pagination happen
// post-fetch in the service.
func (r *donationRepository) GetDiscoverableDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.availableQuery(ctx).
		Preload("Restaurant").
		Preload("Images", "deleted = ?", false).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsForAdmin(ctx context.Context, page, limit int, status entities.DonationStatus, searchTerm string) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Joins("JOIN restaurants ON restaurants.id = donations.restaurant_id").
		Where("donations.deleted = ?", false)

	if status != "" {
		query = query.Where("donations.status = ?", status)
	}

	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where(
			"donations.food_type ILIKE ? OR donations.description ILIKE ? OR restaurants.name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Restaurant").
		Preload("Images", "deleted = ?", false).
		Order("donations.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) HasConfirmedReservation(ctx context.Context, donationID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Where("donation_id = ? AND status = ? AND deleted = ?", donationID, entities.ReservationConfirmed, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *donationRepository) AddDonationImage(ctx context.Context, image *entities.DonationImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *donationRepository) GetDonationImage(ctx context.Context, imageID string) (*entities.DonationImage, error) {
	var image entities.DonationImage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted = ?", imageID, false).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *donationRepository) DemotePrimaryImages(ctx context.Context, donationID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.DonationImage{}).
		Where("donation_id = ? AND is_primary = ?", donationID, true).
		Update("is_primary", false).Error
}

func (r *donationRepository) SoftDeleteDonationImage(ctx context.Context, imageID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.DonationImage{}).
		Where("id = ?", imageID).
		Update("deleted", true).Error
}
