package services_test

import (
	"testing"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validShelterInput() services.ShelterInput {
	return services.ShelterInput{
		Name:     strPtr("Happy Paws"),
		Address:  strPtr("1 Main St"),
		City:     strPtr("Pune"),
		State:    strPtr("MH"),
		ZipCode:  strPtr("411001"),
		Phone:    strPtr("555-0100"),
		Email:    strPtr("Info@HappyPaws.org"),
		Capacity: intPtr(10),
	}
}

func TestShelterService_CreateShelter(t *testing.T) {
	shelterRepo := new(MockShelterRepository)
	petRepo := new(MockPetRepository)
	service := services.NewShelterService(shelterRepo, petRepo)

	shelterRepo.On("Create", mock.AnythingOfType("*models.Shelter")).Return(nil).Once()
	shelter, err := service.CreateShelter(validShelterInput())
	require.NoError(t, err)
	assert.Equal(t, "Happy Paws", shelter.Name)
	assert.Equal(t, "info@happypaws.org", shelter.Email)
	assert.Equal(t, 0, shelter.CurrentOccupancy)
	shelterRepo.AssertExpectations(t)

	// Missing field
	in := validShelterInput()
	in.City = nil
	_, err = service.CreateShelter(in)
	assert.True(t, services.IsValidation(err))

	// Non-positive capacity
	in = validShelterInput()
	in.Capacity = intPtr(0)
	_, err = service.CreateShelter(in)
	assert.True(t, services.IsValidation(err))
	shelterRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestShelterService_GetShelter_DerivedCounts(t *testing.T) {
	shelterRepo := new(MockShelterRepository)
	petRepo := new(MockPetRepository)
	service := services.NewShelterService(shelterRepo, petRepo)

	shelterRepo.On("GetByID", "s-1").Return(&models.Shelter{ID: "s-1", Name: "Happy Paws", CurrentOccupancy: 3}, nil).Once()
	petRepo.On("CountByShelter", "s-1").Return(int64(3), nil).Once()
	petRepo.On("CountByShelterAndStatus", "s-1", models.AdoptionAvailable).Return(int64(2), nil).Once()

	details, err := service.GetShelter("s-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), details.PetsCount)
	assert.Equal(t, int64(2), details.AvailablePets)
	assert.Equal(t, "Happy Paws", details.Name)

	shelterRepo.On("GetByID", "missing").Return(nil, notFound()).Once()
	_, err = service.GetShelter("missing")
	assert.True(t, services.IsNotFound(err))
}

func TestShelterService_UpdateShelter(t *testing.T) {
	shelterRepo := new(MockShelterRepository)
	service := services.NewShelterService(shelterRepo, new(MockPetRepository))

	stored := &models.Shelter{ID: "s-1", Name: "Old", City: "Pune", Capacity: 5, CurrentOccupancy: 2}
	shelterRepo.On("GetByID", "s-1").Return(stored, nil)
	shelterRepo.On("Update", stored).Return(nil).Once()

	updated, err := service.UpdateShelter("s-1", services.ShelterInput{Name: strPtr("New"), Capacity: intPtr(20)})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "Pune", updated.City)
	assert.Equal(t, 20, updated.Capacity)
	assert.Equal(t, 2, updated.CurrentOccupancy)

	_, err = service.UpdateShelter("s-1", services.ShelterInput{Name: strPtr("")})
	assert.True(t, services.IsValidation(err))

	shelterRepo.On("GetByID", "missing").Return(nil, notFound()).Once()
	_, err = service.UpdateShelter("missing", services.ShelterInput{Name: strPtr("x")})
	assert.True(t, services.IsNotFound(err))
}

func TestShelterService_DeleteShelter(t *testing.T) {
	shelterRepo := new(MockShelterRepository)
	petRepo := new(MockPetRepository)
	service := services.NewShelterService(shelterRepo, petRepo)

	// Blocked while it owns pets
	shelterRepo.On("GetByID", "s-1").Return(&models.Shelter{ID: "s-1"}, nil).Once()
	petRepo.On("CountByShelter", "s-1").Return(int64(1), nil).Once()
	err := service.DeleteShelter("s-1")
	assert.True(t, services.IsValidation(err))
	shelterRepo.AssertNotCalled(t, "Delete", "s-1")

	// Empty shelter is removed
	shelterRepo.On("GetByID", "s-2").Return(&models.Shelter{ID: "s-2"}, nil).Once()
	petRepo.On("CountByShelter", "s-2").Return(int64(0), nil).Once()
	shelterRepo.On("Delete", "s-2").Return(nil).Once()
	assert.NoError(t, service.DeleteShelter("s-2"))

	// Unknown shelter
	shelterRepo.On("GetByID", "s-3").Return(nil, notFound()).Once()
	assert.True(t, services.IsNotFound(service.DeleteShelter("s-3")))

	shelterRepo.AssertExpectations(t)
	petRepo.AssertExpectations(t)
}
