package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// VolunteerFilter narrows a volunteer listing. Empty fields are ignored.
type VolunteerFilter struct {
	ShelterID       string
	Status          models.VolunteerStatus
	BackgroundCheck models.BackgroundCheck
	Skill           string // case-insensitive substring of any skill
}

// VolunteerRepository defines the interface for volunteer data access.
type VolunteerRepository interface {
	List(filter VolunteerFilter) ([]models.Volunteer, error)
	GetByID(id string) (*models.Volunteer, error)
	GetByEmail(email string) (*models.Volunteer, error)
	Create(volunteer *models.Volunteer) error
	Update(volunteer *models.Volunteer) error
	AddHours(id string, hours float64) (*models.Volunteer, error)
	Delete(id string) error
	CountByStatus(status models.VolunteerStatus) (int64, error)
}
