package entities

// DonationStatus is the lifecycle state of a donation. The stored value is
// not authoritative for availability: expiry is computed on read, so a
// donation can sit at Available in storage after its expiry has passed.
type DonationStatus string

const (
	DonationAvailable  DonationStatus = "Available"
	DonationReserved   DonationStatus = "Reserved"
	DonationInProgress DonationStatus = "InProgress"
	DonationCompleted  DonationStatus = "Completed"
	DonationExpired    DonationStatus = "Expired"
	DonationCancelled  DonationStatus = "Cancelled"
)

// donationTransitions lists the allowed non-admin status changes. Admin
// overrides bypass this table entirely.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationAvailable:  {DonationReserved, DonationExpired, DonationCancelled},
	DonationReserved:   {DonationAvailable, DonationInProgress, DonationCompleted, DonationCancelled},
	DonationInProgress: {DonationCompleted, DonationCancelled},
}

func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DonationStatus) IsValid() bool {
	switch s {
	case DonationAvailable, DonationReserved, DonationInProgress,
		DonationCompleted, DonationExpired, DonationCancelled:
		return true
	}
	return false
}

func (s DonationStatus) DisplayName() string {
	switch s {
	case DonationAvailable:
		return "Available for reservation"
	case DonationReserved:
		return "Reserved"
	case DonationInProgress:
		return "Pickup in progress"
	case DonationCompleted:
		return "Completed"
	case DonationExpired:
		return "Expired"
	case DonationCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// IsTerminal reports whether the reservation can no longer change state.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

func (s ReservationStatus) DisplayName() string {
	switch s {
	case ReservationPending:
		return "Pending confirmation"
	case ReservationConfirmed:
		return "Confirmed"
	case ReservationCompleted:
		return "Completed"
	case ReservationCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// ApprovalStatus gates whether a restaurant or charity is discoverable.
// The approval workflow itself lives outside this service; the flag is
// consumed as data.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) DisplayName() string {
	switch s {
	case ApprovalPending:
		return "Pending review"
	case ApprovalApproved:
		return "Approved"
	case ApprovalRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

type CharityType string

const (
	CharityOrphanage   CharityType = "Orphanage"
	CharityElderlyHome CharityType = "ElderlyHome"
	CharityShelter     CharityType = "Shelter"
	CharityFoodBank    CharityType = "FoodBank"
	CharityOther       CharityType = "Other"
)

func (t CharityType) DisplayName() string {
	switch t {
	case CharityOrphanage:
		return "Orphanage"
	case CharityElderlyHome:
		return "Elderly home"
	case CharityShelter:
		return "Shelter"
	case CharityFoodBank:
		return "Food bank"
	default:
		return "Other"
	}
}
