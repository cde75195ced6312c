package services

import (
	"fmt"
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"

	"github.com/google/uuid"
)

// PetService handles business logic related to pets.
type PetService struct {
	repo        repositories.PetRepository
	shelterRepo repositories.ShelterRepository
	events      EventPublisher
}

// NewPetService creates a new PetService. events may be nil.
func NewPetService(repo repositories.PetRepository, shelterRepo repositories.ShelterRepository, events EventPublisher) *PetService {
	return &PetService{
		repo:        repo,
		shelterRepo: shelterRepo,
		events:      events,
	}
}

// PetInput carries the writable pet fields. Adoption status is deliberately
// absent: it changes only through UpdateAdoptionStatus.
type PetInput struct {
	Name        *string
	Type        *string
	Breed       *string
	Age         *int
	Gender      *string
	Size        *string
	Color       *string
	Weight      *float64
	Description *string
	Images      []string
	Vaccinated  *bool
	Neutered    *bool
	AdoptionFee *float64
	ShelterID   *string
}

// ValidPetID reports whether id has the format of a pet identifier.
func ValidPetID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ListPets returns the pets matching the filter.
func (s *PetService) ListPets(filter repositories.PetFilter) ([]models.Pet, error) {
	return s.repo.List(filter)
}

// GetPet returns a single pet. Malformed ids are rejected before querying.
func (s *PetService) GetPet(id string) (*models.Pet, error) {
	if !ValidPetID(id) {
		return nil, invalid("Invalid pet ID format")
	}
	return s.repo.GetByID(id)
}

// CreatePet validates the input, checks the owning shelter exists and stores
// the pet as available. The shelter's occupancy grows by one.
func (s *PetService) CreatePet(in PetInput) (*models.Pet, error) {
	if blank(in.Name) || blank(in.Type) || blank(in.Breed) || in.Age == nil ||
		blank(in.Gender) || blank(in.ShelterID) {
		return nil, invalid("Please provide all required fields")
	}
	if err := validatePetInput(in); err != nil {
		return nil, err
	}
	if err := s.requireShelter(*in.ShelterID); err != nil {
		return nil, err
	}

	pet := &models.Pet{AdoptionStatus: models.AdoptionAvailable}
	applyPetInput(pet, in)
	if err := s.repo.Create(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// UpdatePet merges the supplied fields into the stored pet. A new shelter id is
// checked for existence before anything is written.
func (s *PetService) UpdatePet(id string, in PetInput) (*models.Pet, error) {
	pet, err := s.findPet(id)
	if err != nil {
		return nil, err
	}
	for _, f := range []*string{in.Name, in.Type, in.Breed, in.Gender, in.ShelterID} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, invalid("Required pet fields cannot be empty")
		}
	}
	if err := validatePetInput(in); err != nil {
		return nil, err
	}
	if in.ShelterID != nil && *in.ShelterID != pet.ShelterID {
		if err := s.requireShelter(*in.ShelterID); err != nil {
			return nil, err
		}
	}

	applyPetInput(pet, in)
	pet.Shelter = nil
	if err := s.repo.Update(pet); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// UpdateAdoptionStatus sets the adoption status to one of the known values.
func (s *PetService) UpdateAdoptionStatus(id string, status models.AdoptionStatus) (*models.Pet, error) {
	if !status.Valid() {
		return nil, invalid("Invalid adoption status. Must be one of: available, pending, adopted")
	}
	pet, err := s.findPet(id)
	if err != nil {
		return nil, err
	}

	previous := pet.AdoptionStatus
	pet.AdoptionStatus = status
	pet.Shelter = nil
	if err := s.repo.Update(pet); err != nil {
		return nil, err
	}

	if previous != status {
		publish(s.events, EventPetStatusChanged, map[string]interface{}{
			"petId":     pet.ID,
			"shelterId": pet.ShelterID,
			"from":      previous,
			"to":        status,
		})
	}
	return s.repo.GetByID(id)
}

// DeletePet removes the pet and frees its place in the shelter.
func (s *PetService) DeletePet(id string) error {
	if !ValidPetID(id) {
		return missingPet(id)
	}
	return s.repo.Delete(id)
}

// findPet loads a pet for a write. An id that cannot name a pet is reported
// as missing rather than malformed.
func (s *PetService) findPet(id string) (*models.Pet, error) {
	if !ValidPetID(id) {
		return nil, missingPet(id)
	}
	return s.repo.GetByID(id)
}

func missingPet(id string) error {
	return fmt.Errorf("pet with ID %s not found: %w", id, repositories.ErrNotFound)
}

func (s *PetService) requireShelter(id string) error {
	ok, err := s.shelterRepo.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("Shelter not found")
	}
	return nil
}

func validatePetInput(in PetInput) error {
	if in.Gender != nil {
		switch strings.ToLower(strings.TrimSpace(*in.Gender)) {
		case "male", "female":
		default:
			return invalid("Gender must be male or female")
		}
	}
	if in.Age != nil && *in.Age < 0 {
		return invalid("Age cannot be negative")
	}
	if in.Weight != nil && *in.Weight < 0 {
		return invalid("Weight cannot be negative")
	}
	if in.AdoptionFee != nil && *in.AdoptionFee < 0 {
		return invalid("Adoption fee cannot be negative")
	}
	return nil
}

func applyPetInput(p *models.Pet, in PetInput) {
	setString(&p.Name, in.Name)
	if in.Type != nil {
		p.Type = strings.ToLower(strings.TrimSpace(*in.Type))
	}
	setString(&p.Breed, in.Breed)
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = strings.ToLower(strings.TrimSpace(*in.Gender))
	}
	if in.Size != nil {
		p.Size = strings.ToLower(strings.TrimSpace(*in.Size))
	}
	setString(&p.Color, in.Color)
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	setString(&p.Description, in.Description)
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Vaccinated != nil {
		p.Vaccinated = *in.Vaccinated
	}
	if in.Neutered != nil {
		p.Neutered = *in.Neutered
	}
	if in.AdoptionFee != nil {
		p.AdoptionFee = *in.AdoptionFee
	}
	setString(&p.ShelterID, in.ShelterID)
}
