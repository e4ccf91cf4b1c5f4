package reservation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodbridge/domain"
	"foodbridge/entities"
)

type (
	ReservationRepository interface {
		// ReserveDonation atomically validates donation availability and
		// persists the reservation together with the donation status flip.
		ReserveDonation(ctx context.Context, reservation *entities.Reservation) error
		CancelReservation(ctx context.Context, reservationID string) error
		CompleteReservation(ctx context.Context, reservationID string) error

		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		GetCharityReservations(ctx context.Context, charityID string, page, limit int) ([]*entities.Reservation, int64, error)
		GetRestaurantReservations(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Reservation, int64, error)
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// ReserveDonation closes the check-then-act race between concurrent
// reservation attempts: the donation row is locked FOR UPDATE for the
// duration of the transaction, so the second writer observes the status
// flip and fails with a conflict. The partial unique index on active
// reservations (see migration) is the storage-level backstop.
func (r *reservationRepository) ReserveDonation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation entities.Donation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND deleted = ?", reservation.DonationID, false).
			First(&donation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDonationNotFound
			}
			return err
		}

		now := time.Now().UTC()
		if !donation.IsAvailable(now) || !donation.Status.CanTransitionTo(entities.DonationReserved) {
			return domain.ErrDonationNotAvailable
		}

		var existing int64
		if err := tx.
			Model(&entities.Reservation{}).
			Where("donation_id = ? AND charity_id = ? AND status <> ? AND deleted = ?",
				reservation.DonationID, reservation.CharityID, entities.ReservationCancelled, false).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.ErrDuplicateReservation
		}

		if err := tx.Create(reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDonationNotAvailable
			}
			return err
		}

		return tx.
			Model(&entities.Donation{}).
			Where("id = ?", donation.ID).
			Update("status", entities.DonationReserved).Error
	})
}

// CancelReservation flips the reservation to Cancelled and reverts the
// donation to Available iff it is still Reserved; an admin override to any
// other status is left untouched.
func (r *reservationRepository) CancelReservation(ctx context.Context, reservationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation entities.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", reservationID).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReservationNotFound
			}
			return err
		}

		if reservation.Status.IsTerminal() {
			return domain.ErrReservationTerminal
		}

		if err := tx.
			Model(&entities.Reservation{}).
			Where("id = ?", reservationID).
			Update("status", entities.ReservationCancelled).Error; err != nil {
			return err
		}

		return tx.
			Model(&entities.Donation{}).
			Where("id = ? AND status = ?", reservation.DonationID, entities.DonationReserved).
			Update("status", entities.DonationAvailable).Error
	})
}

func (r *reservationRepository) CompleteReservation(ctx context.Context, reservationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation entities.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", reservationID).
			First(&reservation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrReservationNotFound
			}
			return err
		}

		// Completing twice is a no-op.
		if reservation.Status == entities.ReservationCompleted {
			return nil
		}
		if reservation.Status == entities.ReservationCancelled {
			return domain.ErrReservationTerminal
		}

		if err := tx.
			Model(&entities.Reservation{}).
			Where("id = ?", reservationID).
			Update("status", entities.ReservationCompleted).Error; err != nil {
			return err
		}

		return tx.
			Model(&entities.Donation{}).
			Where("id = ?", reservation.DonationID).
			Update("status", entities.DonationCompleted).Error
	})
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Restaurant").
		Preload("Donation.Restaurant.User").
		Preload("Charity").
		Where("id = ? AND deleted = ?", id, false).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetCharityReservations(ctx context.Context, charityID string, page, limit int) ([]*entities.Reservation, int64, error) {
	var reservations []*entities.Reservation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Where("charity_id = ? AND deleted = ?", charityID, false).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Restaurant").
		Where("charity_id = ? AND deleted = ?", charityID, false).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}

func (r *reservationRepository) GetRestaurantReservations(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Reservation, int64, error) {
	var reservations []*entities.Reservation
	var count int64
	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).
		Model(&entities.Reservation{}).
		Joins("JOIN donations ON donations.id = reservations.donation_id").
		Where("donations.restaurant_id = ? AND reservations.deleted = ?", restaurantID, false)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.
		Preload("Donation").
		Preload("Charity").
		Order("reservations.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}
