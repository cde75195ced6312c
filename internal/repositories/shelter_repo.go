package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// ShelterFilter narrows a shelter listing. Empty fields are ignored.
type ShelterFilter struct {
	Name  string
	City  string
	State string
}

// ShelterRepository defines the interface for shelter data access.
type ShelterRepository interface {
	List(filter ShelterFilter) ([]models.Shelter, error)
	GetByID(id string) (*models.Shelter, error)
	Exists(id string) (bool, error)
	Create(shelter *models.Shelter) error
	Update(shelter *models.Shelter) error
	Delete(id string) error
	Count() (int64, error)
}
