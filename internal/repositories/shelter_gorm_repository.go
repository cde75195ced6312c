package repositories

import (
	"fmt"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShelterRepository is a GORM implementation of ShelterRepository.
type GORMShelterRepository struct {
	db *gorm.DB
}

// NewGORMShelterRepository creates a new instance of GORMShelterRepository.
func NewGORMShelterRepository(db *gorm.DB) *GORMShelterRepository {
	return &GORMShelterRepository{db: db}
}

// List retrieves shelters matching the filter, ordered by name.
func (r *GORMShelterRepository) List(filter ShelterFilter) ([]models.Shelter, error) {
	q := r.db.Model(&models.Shelter{})
	if filter.Name != "" {
		q = q.Where(likeClause("name"), likePattern(filter.Name))
	}
	if filter.City != "" {
		q = q.Where(likeClause("city"), likePattern(filter.City))
	}
	if filter.State != "" {
		q = q.Where(likeClause("state"), likePattern(filter.State))
	}

	var shelters []models.Shelter
	if err := q.Order("name asc").Find(&shelters).Error; err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}
	return shelters, nil
}

// GetByID retrieves a single shelter by its ID.
func (r *GORMShelterRepository) GetByID(id string) (*models.Shelter, error) {
	var shelter models.Shelter
	if err := r.db.First(&shelter, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("shelter with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shelter by ID %s: %w", id, err)
	}
	return &shelter, nil
}

// Exists reports whether a shelter with the given ID is stored.
func (r *GORMShelterRepository) Exists(id string) (bool, error) {
	var n int64
	if err := r.db.Model(&models.Shelter{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check shelter %s: %w", id, err)
	}
	return n > 0, nil
}

// Create creates a new shelter in the database.
func (r *GORMShelterRepository) Create(shelter *models.Shelter) error {
	if shelter.ID == "" {
		shelter.ID = uuid.New().String()
	}
	if err := r.db.Create(shelter).Error; err != nil {
		return fmt.Errorf("failed to create shelter: %w", err)
	}
	return nil
}

// Update saves every column of an existing shelter. Occupancy is owned by the
// pet repository and is never written from here.
func (r *GORMShelterRepository) Update(shelter *models.Shelter) error {
	res := r.db.Model(shelter).Select("*").Omit("current_occupancy", "created_at").Updates(shelter)
	if res.Error != nil {
		return fmt.Errorf("failed to update shelter: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shelter with ID %s not found for update: %w", shelter.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a shelter by its ID.
func (r *GORMShelterRepository) Delete(id string) error {
	res := r.db.Delete(&models.Shelter{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete shelter: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shelter with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of shelters.
func (r *GORMShelterRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Shelter{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count shelters: %w", err)
	}
	return n, nil
}

func adjustOccupancy(tx *gorm.DB, shelterID string, delta int) error {
	expr := gorm.Expr("current_occupancy + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN current_occupancy + ? < 0 THEN 0 ELSE current_occupancy + ? END", delta, delta)
	}
	res := tx.Model(&models.Shelter{}).Where("id = ?", shelterID).UpdateColumn("current_occupancy", expr)
	if res.Error != nil {
		return fmt.Errorf("failed to adjust occupancy of shelter %s: %w", shelterID, res.Error)
	}
	return nil
}
