package charity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
	"foodbridge/internal/utils/storage"
	"foodbridge/pkg/geo"
)

type (
	CharityService interface {
		CreateCharity(ctx context.Context, req domain.CreateCharityRequest, userID string) (*domain.CharityResponse, error)
		GetMyCharity(ctx context.Context, userID string) (*domain.CharityResponse, error)
		GetNearbyCharities(ctx context.Context, req domain.GetNearbyCharitiesRequest, page, limit int) (domain.PagedResult[*domain.CharityResponse], error)
	}

	charityService struct {
		charityRepository CharityRepository
		s3                storage.AwsS3
	}
)

func NewCharityService(charityRepository CharityRepository, s3 storage.AwsS3) CharityService {
	return &charityService{
		charityRepository: charityRepository,
		s3:                s3,
	}
}

func (s *charityService) CreateCharity(ctx context.Context, req domain.CreateCharityRequest, userID string) (*domain.CharityResponse, error) {
	exists, err := s.charityRepository.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCharityAlreadyExists
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	charityID := uuid.New()

	var licenseDocument string
	if req.LicenseDocument != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("charity-license-%s", charityID.String()),
			req.LicenseDocument,
			"charities",
			storage.AllowDocument...,
		)
		if err != nil {
			return nil, err
		}
		licenseDocument = s.s3.GetPublicLinkKey(objectKey)
	}

	var proofDocument string
	if req.ProofDocument != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("charity-proof-%s", charityID.String()),
			req.ProofDocument,
			"charities",
			storage.AllowDocument...,
		)
		if err != nil {
			return nil, err
		}
		proofDocument = s.s3.GetPublicLinkKey(objectKey)
	}

	charity := &entities.Charity{
		ID:              charityID,
		UserID:          userUUID,
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Capacity:        req.Capacity,
		Type:            entities.CharityType(req.Type),
		LicenseDocument: licenseDocument,
		ProofDocument:   proofDocument,
		Status:          entities.ApprovalPending,
		IsActive:        true,
	}

	if err := s.charityRepository.CreateCharity(ctx, charity); err != nil {
		return nil, err
	}

	return toCharityResponse(charity, 0), nil
}

func (s *charityService) GetMyCharity(ctx context.Context, userID string) (*domain.CharityResponse, error) {
	charity, err := s.charityRepository.GetCharityByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}
	return toCharityResponse(charity, 0), nil
}

func (s *charityService) GetNearbyCharities(ctx context.Context, req domain.GetNearbyCharitiesRequest, page, limit int) (domain.PagedResult[*domain.CharityResponse], error) {
	charities, err := s.charityRepository.GetApprovedCharities(ctx)
	if err != nil {
		return domain.PagedResult[*domain.CharityResponse]{}, err
	}

	origin := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	matches := geo.WithinRadius(origin, charities, req.Radius, func(c *entities.Charity) geo.Point {
		return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
	})

	result := make([]*domain.CharityResponse, 0, len(matches))
	for _, match := range matches {
		result = append(result, toCharityResponse(match.Item, match.DistanceKm))
	}

	return domain.Paginate(result, page, limit), nil
}

func toCharityResponse(charity *entities.Charity, distanceKm float64) *domain.CharityResponse {
	return &domain.CharityResponse{
		ID:                charity.ID.String(),
		UserID:            charity.UserID.String(),
		Name:              charity.Name,
		Description:       charity.Description,
		Address:           charity.Address,
		Latitude:          charity.Latitude,
		Longitude:         charity.Longitude,
		Capacity:          charity.Capacity,
		Type:              string(charity.Type),
		TypeDisplayName:   charity.Type.DisplayName(),
		Status:            string(charity.Status),
		StatusDisplayName: charity.Status.DisplayName(),
		IsActive:          charity.IsActive,
		DistanceKm:        distanceKm,
		CreatedAt:         charity.CreatedAt,
	}
}
