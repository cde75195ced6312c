package services_test

import (
	"context"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/identity"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if user.ID == "" {
		user.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	return m.user(m.Called(id))
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	return m.user(m.Called(email))
}

func (m *MockUserRepository) GetByGoogleID(googleID string) (*models.User, error) {
	return m.user(m.Called(googleID))
}

func (m *MockUserRepository) user(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) List() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockShelterRepository is a mock implementation of repositories.ShelterRepository
type MockShelterRepository struct {
	mock.Mock
}

func (m *MockShelterRepository) List(filter repositories.ShelterFilter) ([]models.Shelter, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Shelter), args.Error(1)
}

func (m *MockShelterRepository) GetByID(id string) (*models.Shelter, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelter), args.Error(1)
}

func (m *MockShelterRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockShelterRepository) Create(shelter *models.Shelter) error {
	return m.Called(shelter).Error(0)
}

func (m *MockShelterRepository) Update(shelter *models.Shelter) error {
	return m.Called(shelter).Error(0)
}

func (m *MockShelterRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockShelterRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockPetRepository is a mock implementation of repositories.PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) List(filter repositories.PetFilter) ([]models.Pet, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockPetRepository) GetByID(id string) (*models.Pet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetRepository) Create(pet *models.Pet) error {
	return m.Called(pet).Error(0)
}

func (m *MockPetRepository) Update(pet *models.Pet) error {
	return m.Called(pet).Error(0)
}

func (m *MockPetRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockPetRepository) CountByShelter(shelterID string) (int64, error) {
	args := m.Called(shelterID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPetRepository) CountByShelterAndStatus(shelterID string, status models.AdoptionStatus) (int64, error) {
	args := m.Called(shelterID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPetRepository) CountByStatus() (map[models.AdoptionStatus]int64, error) {
	args := m.Called()
	return args.Get(0).(map[models.AdoptionStatus]int64), args.Error(1)
}

// MockVolunteerRepository is a mock implementation of repositories.VolunteerRepository
type MockVolunteerRepository struct {
	mock.Mock
}

func (m *MockVolunteerRepository) List(filter repositories.VolunteerFilter) ([]models.Volunteer, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetByID(id string) (*models.Volunteer, error) {
	return m.volunteer(m.Called(id))
}

func (m *MockVolunteerRepository) GetByEmail(email string) (*models.Volunteer, error) {
	return m.volunteer(m.Called(email))
}

func (m *MockVolunteerRepository) volunteer(args mock.Arguments) (*models.Volunteer, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) Create(v *models.Volunteer) error {
	return m.Called(v).Error(0)
}

func (m *MockVolunteerRepository) Update(v *models.Volunteer) error {
	return m.Called(v).Error(0)
}

func (m *MockVolunteerRepository) AddHours(id string, hours float64) (*models.Volunteer, error) {
	return m.volunteer(m.Called(id, hours))
}

func (m *MockVolunteerRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockVolunteerRepository) CountByStatus(status models.VolunteerStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

// MockDonationRepository is a mock implementation of repositories.DonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) List(filter repositories.DonationFilter) ([]models.Donation, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Donation), args.Error(1)
}

func (m *MockDonationRepository) GetByID(id string) (*models.Donation, error) {
	return m.donation(m.Called(id))
}

func (m *MockDonationRepository) GetByOrderID(orderID string) (*models.Donation, error) {
	return m.donation(m.Called(orderID))
}

func (m *MockDonationRepository) donation(args mock.Arguments) (*models.Donation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *MockDonationRepository) Create(d *models.Donation) error {
	return m.Called(d).Error(0)
}

func (m *MockDonationRepository) Update(d *models.Donation) error {
	return m.Called(d).Error(0)
}

func (m *MockDonationRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockDonationRepository) SumByStatus(status models.PaymentStatus) (float64, int64, error) {
	args := m.Called(status)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockMedicalRecordRepository is a mock implementation of repositories.MedicalRecordRepository
type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) ListByPet(petID string, recordType models.RecordType) ([]models.MedicalRecord, error) {
	args := m.Called(petID, recordType)
	return args.Get(0).([]models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) GetByID(id string) (*models.MedicalRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) Create(record *models.MedicalRecord) error {
	return m.Called(record).Error(0)
}

func (m *MockMedicalRecordRepository) Update(record *models.MedicalRecord) error {
	return m.Called(record).Error(0)
}

func (m *MockMedicalRecordRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

// MockPublisher records published domain events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, data interface{}) error {
	return m.Called(eventType, data).Error(0)
}

// MockVerifier is a mock implementation of identity.Verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, credential string) (identity.Profile, error) {
	args := m.Called(credential)
	return args.Get(0).(identity.Profile), args.Error(1)
}

func notFound() error {
	return repositories.ErrNotFound
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
