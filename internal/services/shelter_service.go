package services

import (
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// ShelterService handles business logic related to shelters.
type ShelterService struct {
	repo    repositories.ShelterRepository
	petRepo repositories.PetRepository
}

// NewShelterService creates a new ShelterService.
func NewShelterService(repo repositories.ShelterRepository, petRepo repositories.PetRepository) *ShelterService {
	return &ShelterService{
		repo:    repo,
		petRepo: petRepo,
	}
}

// ShelterDetails is a shelter with counts derived from its pets.
type ShelterDetails struct {
	models.Shelter
	PetsCount     int64 `json:"petsCount"`
	AvailablePets int64 `json:"availablePets"`
}

// ShelterInput carries the writable shelter fields. On create every required
// field must be set; on update nil fields are left untouched.
type ShelterInput struct {
	Name           *string
	Address        *string
	City           *string
	State          *string
	ZipCode        *string
	Phone          *string
	Email          *string
	Website        *string
	Description    *string
	Capacity       *int
	Coordinates    *models.Coordinates
	OperatingHours map[string]string
}

// ListShelters returns the shelters matching the filter.
func (s *ShelterService) ListShelters(filter repositories.ShelterFilter) ([]models.Shelter, error) {
	return s.repo.List(filter)
}

// GetShelter returns the shelter along with its pet counts.
func (s *ShelterService) GetShelter(id string) (*ShelterDetails, error) {
	shelter, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	total, err := s.petRepo.CountByShelter(id)
	if err != nil {
		return nil, err
	}
	available, err := s.petRepo.CountByShelterAndStatus(id, models.AdoptionAvailable)
	if err != nil {
		return nil, err
	}
	return &ShelterDetails{Shelter: *shelter, PetsCount: total, AvailablePets: available}, nil
}

// CreateShelter validates and stores a new shelter with zero occupancy.
func (s *ShelterService) CreateShelter(in ShelterInput) (*models.Shelter, error) {
	if blank(in.Name) || blank(in.Address) || blank(in.City) || blank(in.State) ||
		blank(in.ZipCode) || blank(in.Phone) || blank(in.Email) || in.Capacity == nil {
		return nil, invalid("Please provide all required fields")
	}
	if *in.Capacity <= 0 {
		return nil, invalid("Capacity must be greater than 0")
	}

	shelter := &models.Shelter{}
	applyShelterInput(shelter, in)
	shelter.CurrentOccupancy = 0
	if err := s.repo.Create(shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

// UpdateShelter merges the supplied fields into the stored shelter.
func (s *ShelterService) UpdateShelter(id string, in ShelterInput) (*models.Shelter, error) {
	shelter, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, f := range []*string{in.Name, in.Address, in.City, in.State, in.ZipCode, in.Phone, in.Email} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, invalid("Required shelter fields cannot be empty")
		}
	}
	if in.Capacity != nil && *in.Capacity <= 0 {
		return nil, invalid("Capacity must be greater than 0")
	}

	applyShelterInput(shelter, in)
	if err := s.repo.Update(shelter); err != nil {
		return nil, err
	}
	return shelter, nil
}

// DeleteShelter removes a shelter that no longer houses any pet.
func (s *ShelterService) DeleteShelter(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	n, err := s.petRepo.CountByShelter(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return invalid("Cannot delete shelter with existing pets. Please relocate or remove pets first.")
	}
	return s.repo.Delete(id)
}

func applyShelterInput(sh *models.Shelter, in ShelterInput) {
	setString(&sh.Name, in.Name)
	setString(&sh.Address, in.Address)
	setString(&sh.City, in.City)
	setString(&sh.State, in.State)
	setString(&sh.ZipCode, in.ZipCode)
	setString(&sh.Phone, in.Phone)
	if in.Email != nil {
		sh.Email = normalizeEmail(*in.Email)
	}
	setString(&sh.Website, in.Website)
	setString(&sh.Description, in.Description)
	if in.Capacity != nil {
		sh.Capacity = *in.Capacity
	}
	if in.Coordinates != nil {
		sh.Coordinates = *in.Coordinates
	}
	if in.OperatingHours != nil {
		sh.OperatingHours = in.OperatingHours
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
