package repositories

import (
	"fmt"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPetRepository is a GORM implementation of PetRepository.
type GORMPetRepository struct {
	db *gorm.DB
}

// NewGORMPetRepository creates a new instance of GORMPetRepository.
func NewGORMPetRepository(db *gorm.DB) *GORMPetRepository {
	return &GORMPetRepository{db: db}
}

func preloadShelterRef(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "address", "city", "state", "phone")
}

// List retrieves pets matching the filter with their shelter projection, newest first.
func (r *GORMPetRepository) List(filter PetFilter) ([]models.Pet, error) {
	q := r.db.Model(&models.Pet{}).Preload("Shelter", preloadShelterRef)
	if filter.Type != "" {
		q = q.Where("LOWER(type) = ?", normalize(filter.Type))
	}
	if filter.Breed != "" {
		q = q.Where(likeClause("breed"), likePattern(filter.Breed))
	}
	if filter.Name != "" {
		q = q.Where(likeClause("name"), likePattern(filter.Name))
	}
	if filter.Gender != "" {
		q = q.Where("LOWER(gender) = ?", normalize(filter.Gender))
	}
	if filter.Size != "" {
		q = q.Where("LOWER(size) = ?", normalize(filter.Size))
	}
	if filter.AdoptionStatus != "" {
		q = q.Where("adoption_status = ?", filter.AdoptionStatus)
	}
	if filter.ShelterID != "" {
		q = q.Where("shelter_id = ?", filter.ShelterID)
	}
	if filter.MaxAge != nil {
		q = q.Where("age <= ?", *filter.MaxAge)
	}

	var pets []models.Pet
	if err := q.Order("created_at desc").Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

// GetByID retrieves a single pet by its ID, including its shelter projection.
func (r *GORMPetRepository) GetByID(id string) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.Preload("Shelter", preloadShelterRef).First(&pet, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("pet with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pet by ID %s: %w", id, err)
	}
	return &pet, nil
}

// Create inserts the pet and bumps its shelter's occupancy in one transaction.
func (r *GORMPetRepository) Create(pet *models.Pet) error {
	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	if pet.AdoptionStatus == "" {
		pet.AdoptionStatus = models.AdoptionAvailable
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(pet).Error; err != nil {
			return fmt.Errorf("failed to create pet: %w", err)
		}
		return adjustOccupancy(tx, pet.ShelterID, 1)
	})
}

// Update saves the pet. When the pet moved to another shelter the occupancy of
// both shelters is adjusted in the same transaction.
func (r *GORMPetRepository) Update(pet *models.Pet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Pet
		if err := tx.Select("id", "shelter_id").First(&current, "id = ?", pet.ID).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("pet with ID %s not found for update: %w", pet.ID, ErrNotFound)
			}
			return fmt.Errorf("failed to load pet %s: %w", pet.ID, err)
		}

		if err := tx.Omit(clause.Associations).Save(pet).Error; err != nil {
			return fmt.Errorf("failed to update pet: %w", err)
		}

		if current.ShelterID != pet.ShelterID {
			if err := adjustOccupancy(tx, current.ShelterID, -1); err != nil {
				return err
			}
			return adjustOccupancy(tx, pet.ShelterID, 1)
		}
		return nil
	})
}

// Delete removes the pet and releases its place in the shelter.
func (r *GORMPetRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pet models.Pet
		if err := tx.Select("id", "shelter_id").First(&pet, "id = ?", id).Error; err != nil {
			if isNotFound(err) {
				return fmt.Errorf("pet with ID %s not found for deletion: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to load pet %s: %w", id, err)
		}
		if err := tx.Delete(&models.Pet{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete pet: %w", err)
		}
		return adjustOccupancy(tx, pet.ShelterID, -1)
	})
}

// CountByShelter returns how many pets reference the shelter.
func (r *GORMPetRepository) CountByShelter(shelterID string) (int64, error) {
	var n int64
	if err := r.db.Model(&models.Pet{}).Where("shelter_id = ?", shelterID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count pets of shelter %s: %w", shelterID, err)
	}
	return n, nil
}

// CountByShelterAndStatus returns how many pets of the shelter are in the given status.
func (r *GORMPetRepository) CountByShelterAndStatus(shelterID string, status models.AdoptionStatus) (int64, error) {
	var n int64
	err := r.db.Model(&models.Pet{}).
		Where("shelter_id = ? AND adoption_status = ?", shelterID, status).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s pets of shelter %s: %w", status, shelterID, err)
	}
	return n, nil
}

// CountByStatus returns the number of pets per adoption status.
func (r *GORMPetRepository) CountByStatus() (map[models.AdoptionStatus]int64, error) {
	var rows []struct {
		AdoptionStatus models.AdoptionStatus
		Total          int64
	}
	err := r.db.Model(&models.Pet{}).
		Select("adoption_status, COUNT(*) AS total").
		Group("adoption_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pets by status: %w", err)
	}

	counts := map[models.AdoptionStatus]int64{
		models.AdoptionAvailable: 0,
		models.AdoptionPending:   0,
		models.AdoptionAdopted:   0,
	}
	for _, row := range rows {
		counts[row.AdoptionStatus] = row.Total
	}
	return counts, nil
}
