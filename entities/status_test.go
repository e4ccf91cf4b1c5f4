package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{DonationAvailable, DonationReserved, true},
		{DonationAvailable, DonationExpired, true},
		{DonationAvailable, DonationCancelled, true},
		{DonationAvailable, DonationCompleted, false},
		{DonationReserved, DonationAvailable, true},
		{DonationReserved, DonationInProgress, true},
		{DonationReserved, DonationCompleted, true},
		{DonationInProgress, DonationCompleted, true},
		{DonationInProgress, DonationReserved, false},
		{DonationCompleted, DonationAvailable, false},
		{DonationExpired, DonationReserved, false},
		{DonationCancelled, DonationAvailable, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestDonationStatusIsValid(t *testing.T) {
	assert.True(t, DonationAvailable.IsValid())
	assert.True(t, DonationCancelled.IsValid())
	assert.False(t, DonationStatus("Teleported").IsValid())
	assert.False(t, DonationStatus("").IsValid())
}

func TestReservationStatusIsTerminal(t *testing.T) {
	assert.False(t, ReservationPending.IsTerminal())
	assert.False(t, ReservationConfirmed.IsTerminal())
	assert.True(t, ReservationCompleted.IsTerminal())
	assert.True(t, ReservationCancelled.IsTerminal())
}

// Availability is status plus expiry computed at read time; a stale
// Available row past its expiry must not count as available.
func TestDonationAvailabilityComputedOnRead(t *testing.T) {
	now := time.Now().UTC()

	fresh := Donation{Status: DonationAvailable, ExpiryDateTime: now.Add(time.Hour)}
	assert.True(t, fresh.IsAvailable(now))
	assert.False(t, fresh.IsExpired(now))

	stale := Donation{Status: DonationAvailable, ExpiryDateTime: now.Add(-time.Hour)}
	assert.False(t, stale.IsAvailable(now))
	assert.True(t, stale.IsExpired(now))

	reserved := Donation{Status: DonationReserved, ExpiryDateTime: now.Add(time.Hour)}
	assert.False(t, reserved.IsAvailable(now))
}
