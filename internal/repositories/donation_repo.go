package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// DonationFilter narrows a donation listing. Empty fields are ignored.
type DonationFilter struct {
	PaymentStatus models.PaymentStatus
	Email         string
	UserID        string
}

// DonationRepository defines the interface for donation data access.
type DonationRepository interface {
	List(filter DonationFilter) ([]models.Donation, error)
	GetByID(id string) (*models.Donation, error)
	GetByOrderID(orderID string) (*models.Donation, error)
	Create(donation *models.Donation) error
	Update(donation *models.Donation) error
	Delete(id string) error
	SumByStatus(status models.PaymentStatus) (total float64, count int64, err error)
}
