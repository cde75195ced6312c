package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/payment"

	log "github.com/sirupsen/logrus"
)

// PaymentService drives the checkout flow of a donation through a payment gateway.
type PaymentService struct {
	gateway   payment.Gateway
	donations *DonationService
	currency  string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gateway payment.Gateway, donations *DonationService, currency string) *PaymentService {
	if currency == "" {
		currency = "INR"
	}
	return &PaymentService{
		gateway:   gateway,
		donations: donations,
		currency:  currency,
	}
}

// CreateOrder opens a payment order for the amount.
func (s *PaymentService) CreateOrder(ctx context.Context, amount float64, receipt string) (payment.Order, error) {
	if amount <= 0 {
		return payment.Order{}, invalid("Amount must be greater than 0")
	}
	order, err := s.gateway.CreateOrder(ctx, amount, s.currency, receipt)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			return payment.Order{}, invalid("Amount must be greater than 0")
		}
		return payment.Order{}, err
	}
	return order, nil
}

// VerifyPayment checks the confirmation with the gateway and records the
// outcome on the donation. A rejected confirmation marks the donation failed.
func (s *PaymentService) VerifyPayment(ctx context.Context, donationID string, c payment.Confirmation) (*models.Donation, bool, error) {
	if strings.TrimSpace(donationID) == "" || strings.TrimSpace(c.OrderID) == "" || strings.TrimSpace(c.PaymentID) == "" {
		return nil, false, invalid("Please provide donationId, orderId and paymentId")
	}

	ok, err := s.gateway.Verify(ctx, c)
	if err != nil {
		return nil, false, err
	}

	status := models.PaymentSuccess
	if !ok {
		status = models.PaymentFailed
		log.Printf("Payment %s for order %s failed verification", c.PaymentID, c.OrderID)
	}
	d, err := s.donations.UpdatePaymentStatus(donationID, status, c.PaymentID)
	if err != nil {
		return nil, false, err
	}
	return d, ok, nil
}
