package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
	"foodbridge/internal/utils/mailing"
	"foodbridge/pkg/charity"
	"foodbridge/pkg/restaurant"
)

type (
	ReservationService interface {
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest, charityUserID string) (*domain.ReservationResponse, error)
		CancelReservation(ctx context.Context, reservationID string, charityUserID string) error
		CompleteReservation(ctx context.Context, reservationID string, restaurantUserID string) error
		GetMyReservations(ctx context.Context, charityUserID string, page, limit int) (domain.PagedResult[*domain.ReservationResponse], error)
		GetRestaurantReservations(ctx context.Context, restaurantUserID string, page, limit int) (domain.PagedResult[*domain.ReservationResponse], error)
	}

	reservationService struct {
		reservationRepository ReservationRepository
		charityRepository     charity.CharityRepository
		restaurantRepository  restaurant.RestaurantRepository
	}
)

func NewReservationService(
	reservationRepository ReservationRepository,
	charityRepository charity.CharityRepository,
	restaurantRepository restaurant.RestaurantRepository,
) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		charityRepository:     charityRepository,
		restaurantRepository:  restaurantRepository,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest, charityUserID string) (*domain.ReservationResponse, error) {
	claimant, err := s.charityRepository.GetCharityByUserID(ctx, charityUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}

	donationUUID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	reservation := &entities.Reservation{
		ID:                uuid.New(),
		DonationID:        donationUUID,
		CharityID:         claimant.ID,
		ReservationTime:   time.Now().UTC(),
		Status:            entities.ReservationConfirmed,
		Notes:             req.Notes,
		PickupTime:        req.PickupTime,
		PickupPersonName:  req.PickupPersonName,
		PickupPersonPhone: req.PickupPersonPhone,
	}

	if err := s.reservationRepository.ReserveDonation(ctx, reservation); err != nil {
		return nil, err
	}

	created, err := s.reservationRepository.GetReservationByID(ctx, reservation.ID.String())
	if err != nil {
		return nil, err
	}

	s.notifyRestaurant(created, claimant)

	return toReservationResponse(created), nil
}

// notifyRestaurant is fire-and-forget; reservation creation never fails on
// mail delivery.
func (s *reservationService) notifyRestaurant(reservation *entities.Reservation, claimant *entities.Charity) {
	if reservation.Donation == nil || reservation.Donation.Restaurant == nil || reservation.Donation.Restaurant.User == nil {
		return
	}
	toEmail := reservation.Donation.Restaurant.User.Email
	if toEmail == "" {
		return
	}

	subject := "Your donation has been reserved"
	body := fmt.Sprintf(
		"<p>%s has reserved your donation of %s.</p><p>Reservation time: %s</p>",
		claimant.Name,
		reservation.Donation.FoodType,
		reservation.ReservationTime.Format(time.RFC1123),
	)

	go func() {
		_ = mailing.SendMail(toEmail, subject, body)
	}()
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string, charityUserID string) error {
	claimant, err := s.charityRepository.GetCharityByUserID(ctx, charityUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCharityNotFound
		}
		return err
	}

	reservation, err := s.reservationRepository.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	// Reservations belonging to another charity are indistinguishable from
	// missing ones to the caller.
	if reservation.CharityID != claimant.ID {
		return domain.ErrReservationNotFound
	}

	if reservation.Status.IsTerminal() {
		return domain.ErrReservationTerminal
	}

	return s.reservationRepository.CancelReservation(ctx, reservationID)
}

func (s *reservationService) CompleteReservation(ctx context.Context, reservationID string, restaurantUserID string) error {
	owner, err := s.restaurantRepository.GetRestaurantByUserID(ctx, restaurantUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	reservation, err := s.reservationRepository.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.Donation == nil || reservation.Donation.RestaurantID != owner.ID {
		return domain.ErrUnauthorizedReservationComplete
	}

	// Idempotent: completing an already-completed reservation succeeds.
	if reservation.Status == entities.ReservationCompleted {
		return nil
	}

	return s.reservationRepository.CompleteReservation(ctx, reservationID)
}

func (s *reservationService) GetMyReservations(ctx context.Context, charityUserID string, page, limit int) (domain.PagedResult[*domain.ReservationResponse], error) {
	claimant, err := s.charityRepository.GetCharityByUserID(ctx, charityUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PagedResult[*domain.ReservationResponse]{}, domain.ErrCharityNotFound
		}
		return domain.PagedResult[*domain.ReservationResponse]{}, err
	}

	reservations, count, err := s.reservationRepository.GetCharityReservations(ctx, claimant.ID.String(), page, limit)
	if err != nil {
		return domain.PagedResult[*domain.ReservationResponse]{}, err
	}

	return domain.NewPagedResult(toReservationResponses(reservations), count, page, limit), nil
}

func (s *reservationService) GetRestaurantReservations(ctx context.Context, restaurantUserID string, page, limit int) (domain.PagedResult[*domain.ReservationResponse], error) {
	owner, err := s.restaurantRepository.GetRestaurantByUserID(ctx, restaurantUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PagedResult[*domain.ReservationResponse]{}, domain.ErrRestaurantNotFound
		}
		return domain.PagedResult[*domain.ReservationResponse]{}, err
	}

	reservations, count, err := s.reservationRepository.GetRestaurantReservations(ctx, owner.ID.String(), page, limit)
	if err != nil {
		return domain.PagedResult[*domain.ReservationResponse]{}, err
	}

	return domain.NewPagedResult(toReservationResponses(reservations), count, page, limit), nil
}

func toReservationResponses(reservations []*entities.Reservation) []*domain.ReservationResponse {
	result := make([]*domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, toReservationResponse(reservation))
	}
	return result
}

func toReservationResponse(reservation *entities.Reservation) *domain.ReservationResponse {
	response := &domain.ReservationResponse{
		ID:                reservation.ID.String(),
		DonationID:        reservation.DonationID.String(),
		CharityID:         reservation.CharityID.String(),
		ReservationTime:   reservation.ReservationTime,
		Status:            string(reservation.Status),
		StatusDisplayName: reservation.Status.DisplayName(),
		Notes:             reservation.Notes,
		PickupTime:        reservation.PickupTime,
		PickupPersonName:  reservation.PickupPersonName,
		PickupPersonPhone: reservation.PickupPersonPhone,
		CreatedAt:         reservation.CreatedAt,
	}

	if reservation.Donation != nil {
		response.DonationFoodType = reservation.Donation.FoodType
		response.DonationExpiry = reservation.Donation.ExpiryDateTime
		if reservation.Donation.Restaurant != nil {
			response.RestaurantName = reservation.Donation.Restaurant.Name
			response.RestaurantAddress = reservation.Donation.Restaurant.Address
		}
	}
	if reservation.Charity != nil {
		response.CharityName = reservation.Charity.Name
	}

	return response
}
