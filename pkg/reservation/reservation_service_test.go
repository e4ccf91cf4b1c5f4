package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodbridge/domain"
	"foodbridge/entities"
)

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) ReserveDonation(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockReservationRepository) CancelReservation(ctx context.Context, reservationID string) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *mockReservationRepository) CompleteReservation(ctx context.Context, reservationID string) error {
	args := m.Called(ctx, reservationID)
	return args.Error(0)
}

func (m *mockReservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reservation), args.Error(1)
}

func (m *mockReservationRepository) GetCharityReservations(ctx context.Context, charityID string, page, limit int) ([]*entities.Reservation, int64, error) {
	args := m.Called(ctx, charityID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *mockReservationRepository) GetRestaurantReservations(ctx context.Context, restaurantID string, page, limit int) ([]*entities.Reservation, int64, error) {
	args := m.Called(ctx, restaurantID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Reservation), args.Get(1).(int64), args.Error(2)
}

type mockCharityRepository struct {
	mock.Mock
}

func (m *mockCharityRepository) CreateCharity(ctx context.Context, charity *entities.Charity) error {
	args := m.Called(ctx, charity)
	return args.Error(0)
}

func (m *mockCharityRepository) GetCharityByID(ctx context.Context, id string) (*entities.Charity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Charity), args.Error(1)
}

func (m *mockCharityRepository) GetCharityByUserID(ctx context.Context, userID string) (*entities.Charity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Charity), args.Error(1)
}

func (m *mockCharityRepository) GetApprovedCharities(ctx context.Context) ([]*entities.Charity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Charity), args.Error(1)
}

func (m *mockCharityRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) GetRestaurantByUserID(ctx context.Context, userID string) (*entities.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// exclusiveReservationRepository is a stateful fake that mirrors the
// transactional repository: exactly one reservation may win a donation.
type exclusiveReservationRepository struct {
	mockReservationRepository

	mu       sync.Mutex
	reserved map[uuid.UUID]bool
}

func (r *exclusiveReservationRepository) ReserveDonation(ctx context.Context, reservation *entities.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reserved[reservation.DonationID] {
		return domain.ErrDonationNotAvailable
	}
	r.reserved[reservation.DonationID] = true
	return nil
}

func (r *exclusiveReservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &entities.Reservation{
		ID:     parsed,
		Status: entities.ReservationConfirmed,
	}, nil
}

// lifecycleReservationRepository is a stateful fake that mirrors the
// transactional repository end to end: donation status and reservation
// rows move together, the way the real transaction moves them.
type lifecycleReservationRepository struct {
	mockReservationRepository

	mu           sync.Mutex
	donations    map[uuid.UUID]*entities.Donation
	reservations map[uuid.UUID]*entities.Reservation
}

func newLifecycleReservationRepository() *lifecycleReservationRepository {
	return &lifecycleReservationRepository{
		donations:    make(map[uuid.UUID]*entities.Donation),
		reservations: make(map[uuid.UUID]*entities.Reservation),
	}
}

func (r *lifecycleReservationRepository) ReserveDonation(ctx context.Context, reservation *entities.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	donation, ok := r.donations[reservation.DonationID]
	if !ok || donation.Deleted {
		return domain.ErrDonationNotFound
	}

	now := time.Now().UTC()
	if !donation.IsAvailable(now) || !donation.Status.CanTransitionTo(entities.DonationReserved) {
		return domain.ErrDonationNotAvailable
	}

	for _, existing := range r.reservations {
		if existing.DonationID == reservation.DonationID &&
			existing.CharityID == reservation.CharityID &&
			existing.Status != entities.ReservationCancelled &&
			!existing.Deleted {
			return domain.ErrDuplicateReservation
		}
	}

	r.reservations[reservation.ID] = reservation
	donation.Status = entities.DonationReserved
	return nil
}

func (r *lifecycleReservationRepository) CancelReservation(ctx context.Context, reservationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, err := r.lookup(reservationID)
	if err != nil {
		return err
	}
	if reservation.Status.IsTerminal() {
		return domain.ErrReservationTerminal
	}

	reservation.Status = entities.ReservationCancelled
	if donation, ok := r.donations[reservation.DonationID]; ok && donation.Status == entities.DonationReserved {
		donation.Status = entities.DonationAvailable
	}
	return nil
}

func (r *lifecycleReservationRepository) CompleteReservation(ctx context.Context, reservationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, err := r.lookup(reservationID)
	if err != nil {
		return err
	}
	if reservation.Status == entities.ReservationCompleted {
		return nil
	}
	if reservation.Status == entities.ReservationCancelled {
		return domain.ErrReservationTerminal
	}

	reservation.Status = entities.ReservationCompleted
	if donation, ok := r.donations[reservation.DonationID]; ok {
		donation.Status = entities.DonationCompleted
	}
	return nil
}

func (r *lifecycleReservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	copied := *reservation
	if donation, ok := r.donations[reservation.DonationID]; ok {
		donationCopy := *donation
		copied.Donation = &donationCopy
	}
	return &copied, nil
}

func (r *lifecycleReservationRepository) lookup(id string) (*entities.Reservation, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	reservation, ok := r.reservations[parsed]
	if !ok || reservation.Deleted {
		return nil, gorm.ErrRecordNotFound
	}
	return reservation, nil
}

func (r *lifecycleReservationRepository) donationStatus(id uuid.UUID) entities.DonationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.donations[id].Status
}

func (r *lifecycleReservationRepository) reservationStatus(id uuid.UUID) entities.ReservationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reservations[id].Status
}

func testCharity(userID string) *entities.Charity {
	return &entities.Charity{
		ID:       uuid.New(),
		UserID:   uuid.MustParse(userID),
		Name:     "Hope Shelter",
		Status:   entities.ApprovalApproved,
		IsActive: true,
	}
}

func TestCreateReservation_Success(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	donationID := uuid.New()

	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)
	reservationRepo.On("ReserveDonation", mock.Anything, mock.MatchedBy(func(r *entities.Reservation) bool {
		return r.DonationID == donationID &&
			r.CharityID == claimant.ID &&
			r.Status == entities.ReservationConfirmed
	})).Return(nil)
	reservationRepo.On("GetReservationByID", mock.Anything, mock.Anything).Return(&entities.Reservation{
		ID:         uuid.New(),
		DonationID: donationID,
		CharityID:  claimant.ID,
		Status:     entities.ReservationConfirmed,
	}, nil)

	res, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: donationID.String(),
	}, charityUserID)

	require.NoError(t, err)
	assert.Equal(t, string(entities.ReservationConfirmed), res.Status)
	reservationRepo.AssertExpectations(t)
}

func TestCreateReservation_CharityMissing(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: uuid.NewString(),
	}, charityUserID)

	assert.ErrorIs(t, err, domain.ErrCharityNotFound)
	reservationRepo.AssertNotCalled(t, "ReserveDonation", mock.Anything, mock.Anything)
}

func TestCreateReservation_InvalidDonationID(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(testCharity(charityUserID), nil)

	_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: "not-a-uuid",
	}, charityUserID)

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestCreateReservation_DonationNotAvailable(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(testCharity(charityUserID), nil)
	reservationRepo.On("ReserveDonation", mock.Anything, mock.Anything).Return(domain.ErrDonationNotAvailable)

	_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: uuid.NewString(),
	}, charityUserID)

	assert.ErrorIs(t, err, domain.ErrDonationNotAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Two charities race for the same donation; exactly one reservation wins.
func TestCreateReservation_ConcurrentClaimsSingleWinner(t *testing.T) {
	reservationRepo := &exclusiveReservationRepository{reserved: make(map[uuid.UUID]bool)}
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	donationID := uuid.NewString()
	const claimants = 8

	var wg sync.WaitGroup
	results := make([]error, claimants)
	for i := 0; i < claimants; i++ {
		charityUserID := uuid.NewString()
		charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(testCharity(charityUserID), nil)

		wg.Add(1)
		go func(idx int, userID string) {
			defer wg.Done()
			_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
				DonationID: donationID,
			}, userID)
			results[idx] = err
		}(i, charityUserID)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrDonationNotAvailable)
		}
	}
	assert.Equal(t, 1, winners)
}

// Cancelling a live reservation returns the donation to the pool.
func TestCancelReservation_RevertsReservedDonation(t *testing.T) {
	repo := newLifecycleReservationRepository()
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(repo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	donationID := uuid.New()
	reservationID := uuid.New()

	repo.donations[donationID] = &entities.Donation{
		ID:             donationID,
		Status:         entities.DonationReserved,
		ExpiryDateTime: time.Now().UTC().Add(time.Hour),
	}
	repo.reservations[reservationID] = &entities.Reservation{
		ID:         reservationID,
		DonationID: donationID,
		CharityID:  claimant.ID,
		Status:     entities.ReservationConfirmed,
	}
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)

	err := service.CancelReservation(context.Background(), reservationID.String(), charityUserID)

	require.NoError(t, err)
	assert.Equal(t, entities.ReservationCancelled, repo.reservationStatus(reservationID))
	assert.Equal(t, entities.DonationAvailable, repo.donationStatus(donationID))
}

// An admin may have moved the donation past Reserved; cancelling the
// reservation must not drag it back to Available.
func TestCancelReservation_LeavesOverriddenDonationAlone(t *testing.T) {
	repo := newLifecycleReservationRepository()
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(repo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	donationID := uuid.New()
	reservationID := uuid.New()

	repo.donations[donationID] = &entities.Donation{
		ID:             donationID,
		Status:         entities.DonationInProgress,
		ExpiryDateTime: time.Now().UTC().Add(time.Hour),
	}
	repo.reservations[reservationID] = &entities.Reservation{
		ID:         reservationID,
		DonationID: donationID,
		CharityID:  claimant.ID,
		Status:     entities.ReservationConfirmed,
	}
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)

	err := service.CancelReservation(context.Background(), reservationID.String(), charityUserID)

	require.NoError(t, err)
	assert.Equal(t, entities.ReservationCancelled, repo.reservationStatus(reservationID))
	assert.Equal(t, entities.DonationInProgress, repo.donationStatus(donationID))
}

func TestCompleteReservation_FlipsBothToCompleted(t *testing.T) {
	repo := newLifecycleReservationRepository()
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(repo, charityRepo, restaurantRepo)

	restaurantUserID := uuid.NewString()
	owner := &entities.Restaurant{ID: uuid.New(), UserID: uuid.MustParse(restaurantUserID)}
	donationID := uuid.New()
	reservationID := uuid.New()

	repo.donations[donationID] = &entities.Donation{
		ID:             donationID,
		RestaurantID:   owner.ID,
		Status:         entities.DonationReserved,
		ExpiryDateTime: time.Now().UTC().Add(time.Hour),
	}
	repo.reservations[reservationID] = &entities.Reservation{
		ID:         reservationID,
		DonationID: donationID,
		CharityID:  uuid.New(),
		Status:     entities.ReservationConfirmed,
	}
	restaurantRepo.On("GetRestaurantByUserID", mock.Anything, restaurantUserID).Return(owner, nil)

	err := service.CompleteReservation(context.Background(), reservationID.String(), restaurantUserID)

	require.NoError(t, err)
	assert.Equal(t, entities.ReservationCompleted, repo.reservationStatus(reservationID))
	assert.Equal(t, entities.DonationCompleted, repo.donationStatus(donationID))
}

// A soft-deleted reservation no longer counts against the one-active-
// reservation-per-charity rule, matching the partial index predicate.
func TestCreateReservation_SoftDeletedReservationDoesNotBlock(t *testing.T) {
	repo := newLifecycleReservationRepository()
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(repo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	donationID := uuid.New()
	removedID := uuid.New()

	repo.donations[donationID] = &entities.Donation{
		ID:             donationID,
		Status:         entities.DonationAvailable,
		ExpiryDateTime: time.Now().UTC().Add(time.Hour),
	}
	repo.reservations[removedID] = &entities.Reservation{
		ID:         removedID,
		DonationID: donationID,
		CharityID:  claimant.ID,
		Status:     entities.ReservationConfirmed,
		Deleted:    true,
	}
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)

	res, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: donationID.String(),
	}, charityUserID)

	require.NoError(t, err)
	assert.Equal(t, string(entities.ReservationConfirmed), res.Status)
	assert.Equal(t, entities.DonationReserved, repo.donationStatus(donationID))
}

func TestCreateReservation_ActiveReservationBlocksDuplicate(t *testing.T) {
	repo := newLifecycleReservationRepository()
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(repo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	donationID := uuid.New()
	existingID := uuid.New()

	// Admin reverted the donation to Available while the charity's
	// reservation stayed Confirmed.
	repo.donations[donationID] = &entities.Donation{
		ID:             donationID,
		Status:         entities.DonationAvailable,
		ExpiryDateTime: time.Now().UTC().Add(time.Hour),
	}
	repo.reservations[existingID] = &entities.Reservation{
		ID:         existingID,
		DonationID: donationID,
		CharityID:  claimant.ID,
		Status:     entities.ReservationConfirmed,
	}
	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)

	_, err := service.CreateReservation(context.Background(), domain.CreateReservationRequest{
		DonationID: donationID.String(),
	}, charityUserID)

	assert.ErrorIs(t, err, domain.ErrDuplicateReservation)
	assert.Equal(t, entities.DonationAvailable, repo.donationStatus(donationID))
}

func TestCancelReservation_OwnReservation(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	reservationID := uuid.New()

	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)
	reservationRepo.On("GetReservationByID", mock.Anything, reservationID.String()).Return(&entities.Reservation{
		ID:        reservationID,
		CharityID: claimant.ID,
		Status:    entities.ReservationConfirmed,
	}, nil)
	reservationRepo.On("CancelReservation", mock.Anything, reservationID.String()).Return(nil)

	err := service.CancelReservation(context.Background(), reservationID.String(), charityUserID)

	require.NoError(t, err)
	reservationRepo.AssertExpectations(t)
}

func TestCancelReservation_OtherCharityLooksMissing(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)
	reservationID := uuid.New()

	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)
	reservationRepo.On("GetReservationByID", mock.Anything, reservationID.String()).Return(&entities.Reservation{
		ID:        reservationID,
		CharityID: uuid.New(),
		Status:    entities.ReservationConfirmed,
	}, nil)

	err := service.CancelReservation(context.Background(), reservationID.String(), charityUserID)

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	reservationRepo.AssertNotCalled(t, "CancelReservation", mock.Anything, mock.Anything)
}

func TestCancelReservation_TerminalStates(t *testing.T) {
	for _, status := range []entities.ReservationStatus{
		entities.ReservationCompleted,
		entities.ReservationCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			reservationRepo := new(mockReservationRepository)
			charityRepo := new(mockCharityRepository)
			restaurantRepo := new(mockRestaurantRepository)
			service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

			charityUserID := uuid.NewString()
			claimant := testCharity(charityUserID)
			reservationID := uuid.New()

			charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)
			reservationRepo.On("GetReservationByID", mock.Anything, reservationID.String()).Return(&entities.Reservation{
				ID:        reservationID,
				CharityID: claimant.ID,
				Status:    status,
			}, nil)

			err := service.CancelReservation(context.Background(), reservationID.String(), charityUserID)

			assert.ErrorIs(t, err, domain.ErrReservationTerminal)
		})
	}
}

func TestCompleteReservation_OnlyDonationOwner(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	restaurantUserID := uuid.NewString()
	owner := &entities.Restaurant{ID: uuid.New(), UserID: uuid.MustParse(restaurantUserID)}
	reservationID := uuid.New()

	restaurantRepo.On("GetRestaurantByUserID", mock.Anything, restaurantUserID).Return(owner, nil)
	reservationRepo.On("GetReservationByID", mock.Anything, reservationID.String()).Return(&entities.Reservation{
		ID:     reservationID,
		Status: entities.ReservationConfirmed,
		Donation: &entities.Donation{
			ID:           uuid.New(),
			RestaurantID: uuid.New(),
		},
	}, nil)

	err := service.CompleteReservation(context.Background(), reservationID.String(), restaurantUserID)

	assert.ErrorIs(t, err, domain.ErrUnauthorizedReservationComplete)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompleteReservation_Idempotent(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	restaurantUserID := uuid.NewString()
	owner := &entities.Restaurant{ID: uuid.New(), UserID: uuid.MustParse(restaurantUserID)}
	reservationID := uuid.New()

	restaurantRepo.On("GetRestaurantByUserID", mock.Anything, restaurantUserID).Return(owner, nil)
	reservationRepo.On("GetReservationByID", mock.Anything, reservationID.String()).Return(&entities.Reservation{
		ID:     reservationID,
		Status: entities.ReservationCompleted,
		Donation: &entities.Donation{
			ID:           uuid.New(),
			RestaurantID: owner.ID,
		},
	}, nil)

	err := service.CompleteReservation(context.Background(), reservationID.String(), restaurantUserID)

	require.NoError(t, err)
	reservationRepo.AssertNotCalled(t, "CompleteReservation", mock.Anything, mock.Anything)
}

func TestGetMyReservations_Paged(t *testing.T) {
	reservationRepo := new(mockReservationRepository)
	charityRepo := new(mockCharityRepository)
	restaurantRepo := new(mockRestaurantRepository)
	service := NewReservationService(reservationRepo, charityRepo, restaurantRepo)

	charityUserID := uuid.NewString()
	claimant := testCharity(charityUserID)

	reservations := []*entities.Reservation{
		{ID: uuid.New(), CharityID: claimant.ID, Status: entities.ReservationConfirmed, ReservationTime: time.Now()},
		{ID: uuid.New(), CharityID: claimant.ID, Status: entities.ReservationCompleted, ReservationTime: time.Now()},
	}

	charityRepo.On("GetCharityByUserID", mock.Anything, charityUserID).Return(claimant, nil)
	reservationRepo.On("GetCharityReservations", mock.Anything, claimant.ID.String(), 2, 10).
		Return(reservations, int64(12), nil)

	res, err := service.GetMyReservations(context.Background(), charityUserID, 2, 10)

	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, int64(12), res.TotalCount)
	assert.Equal(t, 2, res.PageNumber)
	assert.Equal(t, 10, res.PageSize)
}
