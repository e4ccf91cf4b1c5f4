package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
	"foodbridge/internal/utils/storage"
)

type (
	RestaurantService interface {
		CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest, userID string) (*domain.RestaurantResponse, error)
		GetMyRestaurant(ctx context.Context, userID string) (*domain.RestaurantResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		s3                   storage.AwsS3
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository, s3 storage.AwsS3) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		s3:                   s3,
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest, userID string) (*domain.RestaurantResponse, error) {
	exists, err := s.restaurantRepository.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrRestaurantAlreadyExists
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	restaurantID := uuid.New()

	var licenseDocument string
	if req.LicenseDocument != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("restaurant-license-%s", restaurantID.String()),
			req.LicenseDocument,
			"restaurants",
			storage.AllowDocument...,
		)
		if err != nil {
			return nil, err
		}
		licenseDocument = s.s3.GetPublicLinkKey(objectKey)
	}

	var commercialRegister string
	if req.CommercialRegister != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("restaurant-register-%s", restaurantID.String()),
			req.CommercialRegister,
			"restaurants",
			storage.AllowDocument...,
		)
		if err != nil {
			return nil, err
		}
		commercialRegister = s.s3.GetPublicLinkKey(objectKey)
	}

	restaurant := &entities.Restaurant{
		ID:                 restaurantID,
		UserID:             userUUID,
		Name:               req.Name,
		Description:        req.Description,
		Address:            req.Address,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		LicenseDocument:    licenseDocument,
		CommercialRegister: commercialRegister,
		Status:             entities.ApprovalPending,
		IsActive:           true,
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetMyRestaurant(ctx context.Context, userID string) (*domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return toRestaurantResponse(restaurant), nil
}

func toRestaurantResponse(restaurant *entities.Restaurant) *domain.RestaurantResponse {
	return &domain.RestaurantResponse{
		ID:                restaurant.ID.String(),
		UserID:            restaurant.UserID.String(),
		Name:              restaurant.Name,
		Description:       restaurant.Description,
		Address:           restaurant.Address,
		Latitude:          restaurant.Latitude,
		Longitude:         restaurant.Longitude,
		Status:            string(restaurant.Status),
		StatusDisplayName: restaurant.Status.DisplayName(),
		IsActive:          restaurant.IsActive,
		CreatedAt:         restaurant.CreatedAt,
	}
}
