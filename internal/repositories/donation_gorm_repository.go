package repositories

import (
	"fmt"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDonationRepository is a GORM implementation of DonationRepository.
type GORMDonationRepository struct {
	db *gorm.DB
}

// NewGORMDonationRepository creates a new instance of GORMDonationRepository.
func NewGORMDonationRepository(db *gorm.DB) *GORMDonationRepository {
	return &GORMDonationRepository{db: db}
}

// List retrieves donations matching the filter, newest first.
func (r *GORMDonationRepository) List(filter DonationFilter) ([]models.Donation, error) {
	q := r.db.Model(&models.Donation{})
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.Email != "" {
		q = q.Where("LOWER(email) = ?", normalize(filter.Email))
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}

	var donations []models.Donation
	if err := q.Order("created_at desc").Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// GetByID retrieves a single donation by ID.
func (r *GORMDonationRepository) GetByID(id string) (*models.Donation, error) {
	return r.first("id = ?", id)
}

// GetByOrderID retrieves the donation attached to a payment order.
func (r *GORMDonationRepository) GetByOrderID(orderID string) (*models.Donation, error) {
	return r.first("order_id = ?", orderID)
}

func (r *GORMDonationRepository) first(query, arg string) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.First(&d, query, arg).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("donation %s not found: %w", arg, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get donation %s: %w", arg, err)
	}
	return &d, nil
}

// Create creates a new donation.
func (r *GORMDonationRepository) Create(d *models.Donation) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.PaymentStatus == "" {
		d.PaymentStatus = models.PaymentPending
	}
	if d.Currency == "" {
		d.Currency = "INR"
	}
	if err := r.db.Create(d).Error; err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

// Update saves every column of an existing donation.
func (r *GORMDonationRepository) Update(d *models.Donation) error {
	res := r.db.Model(d).Select("*").Omit("created_at").Updates(d)
	if res.Error != nil {
		return fmt.Errorf("failed to update donation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("donation with ID %s not found for update: %w", d.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a donation by ID.
func (r *GORMDonationRepository) Delete(id string) error {
	res := r.db.Delete(&models.Donation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete donation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("donation with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// SumByStatus returns the total amount and number of donations in a payment status.
func (r *GORMDonationRepository) SumByStatus(status models.PaymentStatus) (float64, int64, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := r.db.Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("payment_status = ?", status).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum donations: %w", err)
	}
	return row.Total, row.Count, nil
}
