package services

import (
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// AdminService backs the administrator dashboard.
type AdminService struct {
	users      repositories.UserRepository
	shelters   repositories.ShelterRepository
	pets       repositories.PetRepository
	volunteers repositories.VolunteerRepository
	donations  repositories.DonationRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users repositories.UserRepository,
	shelters repositories.ShelterRepository,
	pets repositories.PetRepository,
	volunteers repositories.VolunteerRepository,
	donations repositories.DonationRepository,
) *AdminService {
	return &AdminService{
		users:      users,
		shelters:   shelters,
		pets:       pets,
		volunteers: volunteers,
		donations:  donations,
	}
}

// Stats summarizes the platform for the dashboard.
type Stats struct {
	Users              int64                           `json:"users"`
	Shelters           int64                           `json:"shelters"`
	Pets               map[models.AdoptionStatus]int64 `json:"pets"`
	ActiveVolunteers   int64                           `json:"activeVolunteers"`
	DonationsCount     int64                           `json:"donationsCount"`
	DonationsCollected float64                         `json:"donationsCollected"`
}

// Stats gathers the dashboard counters.
func (s *AdminService) Stats() (*Stats, error) {
	users, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	shelters, err := s.shelters.Count()
	if err != nil {
		return nil, err
	}
	pets, err := s.pets.CountByStatus()
	if err != nil {
		return nil, err
	}
	active, err := s.volunteers.CountByStatus(models.VolunteerActive)
	if err != nil {
		return nil, err
	}
	collected, count, err := s.donations.SumByStatus(models.PaymentSuccess)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Users:              users,
		Shelters:           shelters,
		Pets:               pets,
		ActiveVolunteers:   active,
		DonationsCount:     count,
		DonationsCollected: collected,
	}, nil
}

// ListUsers returns every account.
func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.users.List()
}

// UpdateUserRole changes a user's role. Admins cannot demote themselves.
func (s *AdminService) UpdateUserRole(actorID, userID string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, invalid("Invalid role. Must be one of: user, admin")
	}
	if actorID == userID && role != models.RoleAdmin {
		return nil, invalid("You cannot remove your own admin role")
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account other than the caller's own.
func (s *AdminService) DeleteUser(actorID, userID string) error {
	if actorID == userID {
		return invalid("You cannot delete your own account")
	}
	return s.users.Delete(userID)
}
