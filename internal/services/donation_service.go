package services

import (
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// DonationService handles business logic related to donations.
type DonationService struct {
	repo     repositories.DonationRepository
	events   EventPublisher
	currency string
}

// NewDonationService creates a new DonationService. events may be nil.
func NewDonationService(repo repositories.DonationRepository, events EventPublisher, currency string) *DonationService {
	if currency == "" {
		currency = "INR"
	}
	return &DonationService{
		repo:     repo,
		events:   events,
		currency: currency,
	}
}

// DonationInput carries the fields accepted when a donation is recorded.
type DonationInput struct {
	DonorName *string
	Email     *string
	Phone     *string
	Amount    *float64
	Message   *string
	Anonymous *bool
	PaymentID *string
	OrderID   *string
}

// ListDonations returns the donations matching the filter.
func (s *DonationService) ListDonations(filter repositories.DonationFilter) ([]models.Donation, error) {
	return s.repo.List(filter)
}

// GetDonation returns a donation. Non-admin callers only see their own.
func (s *DonationService) GetDonation(id, callerID string, callerIsAdmin bool) (*models.Donation, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !callerIsAdmin && (d.UserID == nil || *d.UserID != callerID) {
		return nil, ErrForbidden
	}
	return d, nil
}

// CreateDonation records a pending donation. userID is set when the donor is signed in.
func (s *DonationService) CreateDonation(in DonationInput, userID string) (*models.Donation, error) {
	if blank(in.DonorName) || blank(in.Email) || in.Amount == nil {
		return nil, invalid("Please provide all required fields")
	}
	if *in.Amount <= 0 {
		return nil, invalid("Donation amount must be greater than 0")
	}

	d := &models.Donation{
		DonorName:     strings.TrimSpace(*in.DonorName),
		Email:         normalizeEmail(*in.Email),
		Amount:        *in.Amount,
		Currency:      s.currency,
		PaymentStatus: models.PaymentPending,
	}
	setString(&d.Phone, in.Phone)
	setString(&d.Message, in.Message)
	setString(&d.PaymentID, in.PaymentID)
	setString(&d.OrderID, in.OrderID)
	if in.Anonymous != nil {
		d.Anonymous = *in.Anonymous
	}
	if userID != "" {
		d.UserID = &userID
	}
	if err := s.repo.Create(d); err != nil {
		return nil, err
	}

	publish(s.events, EventDonationCreated, map[string]interface{}{
		"donationId": d.ID,
		"amount":     d.Amount,
		"currency":   d.Currency,
	})
	return d, nil
}

// UpdatePaymentStatus sets the payment status and, when given, the payment id.
func (s *DonationService) UpdatePaymentStatus(id string, status models.PaymentStatus, paymentID string) (*models.Donation, error) {
	if !status.Valid() {
		return nil, invalid("Invalid payment status. Must be one of: pending, success, failed")
	}
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	previous := d.PaymentStatus
	d.PaymentStatus = status
	if strings.TrimSpace(paymentID) != "" {
		d.PaymentID = strings.TrimSpace(paymentID)
	}
	if err := s.repo.Update(d); err != nil {
		return nil, err
	}

	if previous != status {
		publish(s.events, EventDonationPaymentUpdated, map[string]interface{}{
			"donationId": d.ID,
			"from":       previous,
			"to":         status,
			"paymentId":  d.PaymentID,
		})
	}
	return d, nil
}

// DeleteDonation removes a donation.
func (s *DonationService) DeleteDonation(id string) error {
	return s.repo.Delete(id)
}
