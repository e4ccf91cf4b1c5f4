package donation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
	"foodbridge/internal/utils"
	"foodbridge/internal/utils/storage"
	"foodbridge/pkg/charity"
	"foodbridge/pkg/geo"
	"foodbridge/pkg/restaurant"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) (*domain.DonationResponse, error)
		DeleteDonation(ctx context.Context, id string, userID string) error
		GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error)
		GetMyDonations(ctx context.Context, userID string, page, limit int) (domain.PagedResult[*domain.DonationResponse], error)
		GetAvailableDonations(ctx context.Context, page, limit int) (domain.PagedResult[*domain.DonationResponse], error)
		GetNearbyDonations(ctx context.Context, lat, lng, radiusKm float64, page, limit int) (domain.PagedResult[*domain.DonationResponse], error)
		GetNearbyDonationsForCharity(ctx context.Context, charityUserID string, radiusKm float64, page, limit int) (domain.PagedResult[*domain.DonationResponse], error)

		AddDonationImage(ctx context.Context, donationID string, req domain.AddDonationImageRequest, userID string) (*domain.DonationImageResponse, error)
		RemoveDonationImage(ctx context.Context, donationID, imageID string, userID string) error

		AdminUpdateDonationStatus(ctx context.Context, id string, req domain.AdminUpdateDonationStatusRequest) error
		AdminDeleteDonation(ctx context.Context, id string) error
		GetDonationsForAdmin(ctx context.Context, page, limit int, filter domain.AdminDonationFilter) (domain.PagedResult[*domain.DonationResponse], error)
	}

	donationService struct {
		donationRepository   DonationRepository
		restaurantRepository restaurant.RestaurantRepository
		charityRepository    charity.CharityRepository
		s3                   storage.AwsS3
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	restaurantRepository restaurant.RestaurantRepository,
	charityRepository charity.CharityRepository,
	s3 storage.AwsS3,
) DonationService {
	return &donationService{
		donationRepository:   donationRepository,
		restaurantRepository: restaurantRepository,
		charityRepository:    charityRepository,
		s3:                   s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error) {
	owner, err := s.restaurantRepository.GetRestaurantByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	if !req.ExpiryDateTime.After(time.Now().UTC()) {
		return nil, domain.ErrExpiryNotFuture
	}

	donationID := uuid.New()
	donation := &entities.Donation{
		ID:                  donationID,
		RestaurantID:        owner.ID,
		FoodType:            req.FoodType,
		Description:         req.Description,
		EstimatedServings:   req.EstimatedServings,
		ExpiryDateTime:      req.ExpiryDateTime.UTC(),
		Status:              entities.DonationAvailable,
		RequiresPickup:      req.RequiresPickup,
		SpecialInstructions: req.SpecialInstructions,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	// First successfully uploaded image becomes primary; a single-primary
	// invariant is not enforced at the storage layer.
	primaryAssigned := false
	for i, image := range req.Images {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s-%d", donationID.String(), i),
			image,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			continue // skip files the store rejects
		}

		donationImage := &entities.DonationImage{
			ID:         uuid.New(),
			DonationID: donationID,
			ImagePath:  s.s3.GetPublicLinkKey(objectKey),
			IsPrimary:  !primaryAssigned,
		}
		if err := s.donationRepository.AddDonationImage(ctx, donationImage); err != nil {
			continue
		}
		primaryAssigned = true
	}

	created, err := s.donationRepository.GetDonationByID(ctx, donationID.String())
	if err != nil {
		return nil, err
	}

	return toDonationResponse(created, 0), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.Restaurant == nil || donation.Restaurant.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	if donation.Status != entities.DonationAvailable && !utils.AllowEditReserved() {
		return nil, domain.ErrDonationLocked
	}

	if !req.ExpiryDateTime.After(time.Now().UTC()) {
		return nil, domain.ErrExpiryNotFuture
	}

	if req.FoodType != "" {
		donation.FoodType = req.FoodType
	}
	if req.Description != "" {
		donation.Description = req.Description
	}
	if req.EstimatedServings > 0 {
		donation.EstimatedServings = req.EstimatedServings
	}
	if req.RequiresPickup != nil {
		donation.RequiresPickup = *req.RequiresPickup
	}
	if req.SpecialInstructions != "" {
		donation.SpecialInstructions = req.SpecialInstructions
	}
	if req.ContactPerson != "" {
		donation.ContactPerson = req.ContactPerson
	}
	if req.ContactPhone != "" {
		donation.ContactPhone = req.ContactPhone
	}
	donation.ExpiryDateTime = req.ExpiryDateTime.UTC()

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDonationResponse(donation, 0), nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.Restaurant == nil || donation.Restaurant.UserID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	hasActive, err := s.donationRepository.HasConfirmedReservation(ctx, id)
	if err != nil {
		return err
	}
	if hasActive {
		return domain.ErrDonationHasReservations
	}

	return s.donationRepository.SoftDeleteDonation(ctx, id)
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDonationResponse(donation, 0), nil
}

func (s *donationService) GetMyDonations(ctx context.Context, userID string, page, limit int) (domain.PagedResult[*domain.DonationResponse], error) {
	owner, err := s.restaurantRepository.GetRestaurantByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PagedResult[*domain.DonationResponse]{}, domain.ErrRestaurantNotFound
		}
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}

	donations, count, err := s.donationRepository.GetRestaurantDonations(ctx, owner.ID.String(), page, limit)
	if err != nil {
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}

	return domain.NewPagedResult(toDonationResponses(donations), count, page, limit), nil
}

func (s *donationService) GetAvailableDonations(ctx context.Context, page, limit int) (domain.PagedResult[*domain.DonationResponse], error) {
	donations, count, err := s.donationRepository.GetAvailableDonations(ctx, page, limit)
	if err != nil {
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}
	return domain.NewPagedResult(toDonationResponses(donations), count, page, limit), nil
}

func (s *donationService) GetNearbyDonations(ctx context.Context, lat, lng, radiusKm float64, page, limit int) (domain.PagedResult[*domain.DonationResponse], error) {
	donations, err := s.donationRepository.GetDiscoverableDonations(ctx)
	if err != nil {
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}

	origin := geo.Point{Latitude: lat, Longitude: lng}
	matches := geo.WithinRadius(origin, donations, radiusKm, func(d *entities.Donation) geo.Point {
		if d.Restaurant == nil {
			return geo.Point{}
		}
		return geo.Point{Latitude: d.Restaurant.Latitude, Longitude: d.Restaurant.Longitude}
	})

	result := make([]*domain.DonationResponse, 0, len(matches))
	for _, match := range matches {
		result = append(result, toDonationResponse(match.Item, match.DistanceKm))
	}

	return domain.Paginate(result, page, limit), nil
}

func (s *donationService) GetNearbyDonationsForCharity(ctx context.Context, charityUserID string, radiusKm float64, page, limit int) (domain.PagedResult[*domain.DonationResponse], error) {
	requester, err := s.charityRepository.GetCharityByUserID(ctx, charityUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PagedResult[*domain.DonationResponse]{}, domain.ErrCharityNotFound
		}
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}

	return s.GetNearbyDonations(ctx, requester.Latitude, requester.Longitude, radiusKm, page, limit)
}

func (s *donationService) AddDonationImage(ctx context.Context, donationID string, req domain.AddDonationImageRequest, userID string) (*domain.DonationImageResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.Restaurant == nil || donation.Restaurant.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	if req.IsPrimary {
		if err := s.donationRepository.DemotePrimaryImages(ctx, donationID); err != nil {
			return nil, err
		}
	}

	imageID := uuid.New()
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("donation-%s-%s", donationID, imageID.String()),
		req.Image,
		"donations",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	donationImage := &entities.DonationImage{
		ID:         imageID,
		DonationID: donation.ID,
		ImagePath:  s.s3.GetPublicLinkKey(objectKey),
		IsPrimary:  req.IsPrimary,
	}
	if err := s.donationRepository.AddDonationImage(ctx, donationImage); err != nil {
		return nil, err
	}

	return &domain.DonationImageResponse{
		ID:        donationImage.ID.String(),
		ImagePath: donationImage.ImagePath,
		IsPrimary: donationImage.IsPrimary,
	}, nil
}

func (s *donationService) RemoveDonationImage(ctx context.Context, donationID, imageID string, userID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.Restaurant == nil || donation.Restaurant.UserID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	image, err := s.donationRepository.GetDonationImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationImageNotFound
		}
		return err
	}
	if image.DonationID != donation.ID {
		return domain.ErrDonationImageNotFound
	}

	if objectKey := s.s3.GetObjectKeyFromLink(image.ImagePath); objectKey != "" {
		_ = s.s3.DeleteFile(objectKey)
	}

	return s.donationRepository.SoftDeleteDonationImage(ctx, imageID)
}

// AdminUpdateDonationStatus is an unconditional override: no ownership
// check and no transition-table validation.
func (s *donationService) AdminUpdateDonationStatus(ctx context.Context, id string, req domain.AdminUpdateDonationStatusRequest) error {
	status := entities.DonationStatus(req.Status)
	if !status.IsValid() {
		return domain.ErrInvalidDonationStatus
	}

	if err := s.donationRepository.UpdateDonationStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}
	return nil
}

// AdminDeleteDonation soft-deletes without the active-reservation guard
// that protects the owner path.
func (s *donationService) AdminDeleteDonation(ctx context.Context, id string) error {
	if _, err := s.donationRepository.GetAnyDonationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}
	return s.donationRepository.SoftDeleteDonation(ctx, id)
}

func (s *donationService) GetDonationsForAdmin(ctx context.Context, page, limit int, filter domain.AdminDonationFilter) (domain.PagedResult[*domain.DonationResponse], error) {
	donations, count, err := s.donationRepository.GetDonationsForAdmin(ctx, page, limit, entities.DonationStatus(filter.Status), filter.SearchTerm)
	if err != nil {
		return domain.PagedResult[*domain.DonationResponse]{}, err
	}
	return domain.NewPagedResult(toDonationResponses(donations), count, page, limit), nil
}

func toDonationResponses(donations []*entities.Donation) []*domain.DonationResponse {
	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation, 0))
	}
	return result
}

func toDonationResponse(donation *entities.Donation, distanceKm float64) *domain.DonationResponse {
	now := time.Now().UTC()

	images := make([]*domain.DonationImageResponse, 0, len(donation.Images))
	for _, image := range donation.Images {
		if image.Deleted {
			continue
		}
		images = append(images, &domain.DonationImageResponse{
			ID:        image.ID.String(),
			ImagePath: image.ImagePath,
			IsPrimary: image.IsPrimary,
		})
	}

	response := &domain.DonationResponse{
		ID:                  donation.ID.String(),
		RestaurantID:        donation.RestaurantID.String(),
		FoodType:            donation.FoodType,
		Description:         donation.Description,
		EstimatedServings:   donation.EstimatedServings,
		ExpiryDateTime:      donation.ExpiryDateTime,
		Status:              string(donation.Status),
		StatusDisplayName:   donation.Status.DisplayName(),
		IsExpired:           donation.IsExpired(now),
		IsAvailable:         donation.IsAvailable(now),
		RequiresPickup:      donation.RequiresPickup,
		SpecialInstructions: donation.SpecialInstructions,
		ContactPerson:       donation.ContactPerson,
		ContactPhone:        donation.ContactPhone,
		DistanceKm:          distanceKm,
		Images:              images,
		CreatedAt:           donation.CreatedAt,
		UpdatedAt:           donation.UpdatedAt,
	}

	if donation.Restaurant != nil {
		response.RestaurantName = donation.Restaurant.Name
		response.RestaurantAddress = donation.Restaurant.Address
	}

	return response
}
