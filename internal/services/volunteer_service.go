package services

import (
	"strings"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// VolunteerService handles business logic related to volunteers.
type VolunteerService struct {
	repo        repositories.VolunteerRepository
	shelterRepo repositories.ShelterRepository
	events      EventPublisher
}

// NewVolunteerService creates a new VolunteerService. events may be nil.
func NewVolunteerService(repo repositories.VolunteerRepository, shelterRepo repositories.ShelterRepository, events EventPublisher) *VolunteerService {
	return &VolunteerService{
		repo:        repo,
		shelterRepo: shelterRepo,
		events:      events,
	}
}

// VolunteerInput carries the volunteer fields a registration or profile edit
// may set. Status, background check and hours have their own operations.
type VolunteerInput struct {
	Name             *string
	Email            *string
	Phone            *string
	Address          *string
	ShelterID        *string
	Skills           []string
	Availability     map[string][]string
	Experience       *string
	EmergencyContact *models.EmergencyContact
}

// ListVolunteers returns the volunteers matching the filter.
func (s *VolunteerService) ListVolunteers(filter repositories.VolunteerFilter) ([]models.Volunteer, error) {
	return s.repo.List(filter)
}

// GetVolunteer returns a single volunteer.
func (s *VolunteerService) GetVolunteer(id string) (*models.Volunteer, error) {
	return s.repo.GetByID(id)
}

// CreateVolunteer registers a volunteer for an existing shelter. userID links
// the registration to the signed-in account and may be empty.
func (s *VolunteerService) CreateVolunteer(in VolunteerInput, userID string) (*models.Volunteer, error) {
	if blank(in.Name) || blank(in.Email) || blank(in.Phone) || blank(in.ShelterID) {
		return nil, invalid("Please provide all required fields")
	}
	if err := s.requireUniqueEmail(*in.Email, ""); err != nil {
		return nil, err
	}
	if err := s.requireShelter(*in.ShelterID); err != nil {
		return nil, err
	}

	v := &models.Volunteer{
		Status:          models.VolunteerActive,
		BackgroundCheck: models.BackgroundPending,
		Skills:          []string{},
	}
	applyVolunteerInput(v, in)
	if userID != "" {
		v.UserID = &userID
	}
	if err := s.repo.Create(v); err != nil {
		return nil, err
	}

	publish(s.events, EventVolunteerRegistered, map[string]interface{}{
		"volunteerId": v.ID,
		"shelterId":   v.ShelterID,
		"email":       v.Email,
	})
	return v, nil
}

// UpdateVolunteer merges the supplied profile fields into the stored volunteer.
func (s *VolunteerService) UpdateVolunteer(id string, in VolunteerInput) (*models.Volunteer, error) {
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, f := range []*string{in.Name, in.Email, in.Phone, in.ShelterID} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, invalid("Required volunteer fields cannot be empty")
		}
	}
	if in.Email != nil && normalizeEmail(*in.Email) != v.Email {
		if err := s.requireUniqueEmail(*in.Email, v.ID); err != nil {
			return nil, err
		}
	}
	if in.ShelterID != nil && *in.ShelterID != v.ShelterID {
		if err := s.requireShelter(*in.ShelterID); err != nil {
			return nil, err
		}
	}

	applyVolunteerInput(v, in)
	v.Shelter = nil
	if err := s.repo.Update(v); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// UpdateStatus sets the engagement status.
func (s *VolunteerService) UpdateStatus(id string, status models.VolunteerStatus) (*models.Volunteer, error) {
	if !status.Valid() {
		return nil, invalid("Invalid status. Must be one of: active, inactive, suspended")
	}
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	v.Status = status
	v.Shelter = nil
	if err := s.repo.Update(v); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// UpdateBackgroundCheck sets the background check outcome.
func (s *VolunteerService) UpdateBackgroundCheck(id string, check models.BackgroundCheck) (*models.Volunteer, error) {
	if !check.Valid() {
		return nil, invalid("Invalid background check status. Must be one of: pending, approved, rejected")
	}
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	v.BackgroundCheck = check
	v.Shelter = nil
	if err := s.repo.Update(v); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// AddHours increments hoursCompleted. The counter is never overwritten.
func (s *VolunteerService) AddHours(id string, hours *float64) (*models.Volunteer, error) {
	if hours == nil {
		return nil, invalid("hoursToAdd is required")
	}
	if *hours < 0 {
		return nil, invalid("Hours to add must be a non-negative number")
	}
	return s.repo.AddHours(id, *hours)
}

// DeleteVolunteer removes a volunteer.
func (s *VolunteerService) DeleteVolunteer(id string) error {
	return s.repo.Delete(id)
}

func (s *VolunteerService) requireUniqueEmail(email, selfID string) error {
	existing, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil && !IsNotFound(err) {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return invalid("Volunteer with this email already exists")
	}
	return nil
}

func (s *VolunteerService) requireShelter(id string) error {
	ok, err := s.shelterRepo.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("Shelter not found")
	}
	return nil
}

func applyVolunteerInput(v *models.Volunteer, in VolunteerInput) {
	setString(&v.Name, in.Name)
	if in.Email != nil {
		v.Email = normalizeEmail(*in.Email)
	}
	setString(&v.Phone, in.Phone)
	setString(&v.Address, in.Address)
	setString(&v.ShelterID, in.ShelterID)
	if in.Skills != nil {
		v.Skills = in.Skills
	}
	if in.Availability != nil {
		v.Availability = in.Availability
	}
	setString(&v.Experience, in.Experience)
	if in.EmergencyContact != nil {
		v.EmergencyContact = *in.EmergencyContact
	}
}
