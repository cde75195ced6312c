package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// PetFilter narrows a pet listing. Empty fields are ignored.
type PetFilter struct {
	Type           string
	Breed          string // case-insensitive substring
	Name           string // case-insensitive substring
	Gender         string
	Size           string
	AdoptionStatus models.AdoptionStatus
	ShelterID      string
	MaxAge         *int
}

// PetRepository defines the interface for pet data access. Writes that change
// which shelter houses a pet also maintain that shelter's occupancy.
type PetRepository interface {
	List(filter PetFilter) ([]models.Pet, error)
	GetByID(id string) (*models.Pet, error)
	Create(pet *models.Pet) error
	Update(pet *models.Pet) error
	Delete(id string) error
	CountByShelter(shelterID string) (int64, error)
	CountByShelterAndStatus(shelterID string, status models.AdoptionStatus) (int64, error)
	CountByStatus() (map[models.AdoptionStatus]int64, error)
}
