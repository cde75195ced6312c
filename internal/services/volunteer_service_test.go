package services_test

import (
	"testing"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validVolunteerInput() services.VolunteerInput {
	return services.VolunteerInput{
		Name:      strPtr("Asha"),
		Email:     strPtr("Asha@Example.com"),
		Phone:     strPtr("555-0101"),
		ShelterID: strPtr(shelterID),
		Skills:    []string{"walking", "grooming"},
	}
}

func TestVolunteerService_CreateVolunteer(t *testing.T) {
	repo := new(MockVolunteerRepository)
	shelterRepo := new(MockShelterRepository)
	events := new(MockPublisher)
	service := services.NewVolunteerService(repo, shelterRepo, events)

	repo.On("GetByEmail", "asha@example.com").Return(nil, notFound()).Once()
	shelterRepo.On("Exists", shelterID).Return(true, nil).Once()
	repo.On("Create", mock.MatchedBy(func(v *models.Volunteer) bool {
		return v.Status == models.VolunteerActive &&
			v.BackgroundCheck == models.BackgroundPending &&
			v.HoursCompleted == 0 &&
			v.UserID != nil && *v.UserID == "u-1"
	})).Return(nil).Once()
	events.On("Publish", services.EventVolunteerRegistered, mock.Anything).Return(nil).Once()

	v, err := service.CreateVolunteer(validVolunteerInput(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", v.Email)
	assert.Equal(t, []string{"walking", "grooming"}, v.Skills)
	repo.AssertExpectations(t)
	shelterRepo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestVolunteerService_CreateVolunteer_Rejections(t *testing.T) {
	repo := new(MockVolunteerRepository)
	shelterRepo := new(MockShelterRepository)
	service := services.NewVolunteerService(repo, shelterRepo, nil)

	in := validVolunteerInput()
	in.Phone = nil
	_, err := service.CreateVolunteer(in, "")
	assert.True(t, services.IsValidation(err))

	repo.On("GetByEmail", "asha@example.com").Return(&models.Volunteer{ID: "v-1"}, nil).Once()
	_, err = service.CreateVolunteer(validVolunteerInput(), "")
	require.Error(t, err)
	assert.Equal(t, "Volunteer with this email already exists", err.Error())

	repo.On("GetByEmail", "asha@example.com").Return(nil, notFound()).Once()
	shelterRepo.On("Exists", shelterID).Return(false, nil).Once()
	_, err = service.CreateVolunteer(validVolunteerInput(), "")
	assert.True(t, services.IsValidation(err))

	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVolunteerService_AddHours(t *testing.T) {
	repo := new(MockVolunteerRepository)
	service := services.NewVolunteerService(repo, new(MockShelterRepository), nil)

	_, err := service.AddHours("v-1", nil)
	assert.True(t, services.IsValidation(err))

	_, err = service.AddHours("v-1", floatPtr(-2))
	assert.True(t, services.IsValidation(err))
	repo.AssertNotCalled(t, "AddHours", mock.Anything, mock.Anything)

	repo.On("AddHours", "v-1", 10.0).Return(&models.Volunteer{ID: "v-1", HoursCompleted: 20}, nil).Once()
	v, err := service.AddHours("v-1", floatPtr(10))
	require.NoError(t, err)
	assert.Equal(t, 20.0, v.HoursCompleted)

	repo.On("AddHours", "missing", 1.0).Return(nil, notFound()).Once()
	_, err = service.AddHours("missing", floatPtr(1))
	assert.True(t, services.IsNotFound(err))
	repo.AssertExpectations(t)
}

func TestVolunteerService_StatusAndBackgroundCheck(t *testing.T) {
	repo := new(MockVolunteerRepository)
	service := services.NewVolunteerService(repo, new(MockShelterRepository), nil)

	_, err := service.UpdateStatus("v-1", models.VolunteerStatus("retired"))
	assert.True(t, services.IsValidation(err))
	_, err = service.UpdateBackgroundCheck("v-1", models.BackgroundCheck("maybe"))
	assert.True(t, services.IsValidation(err))

	stored := &models.Volunteer{ID: "v-1", Status: models.VolunteerActive, BackgroundCheck: models.BackgroundPending, HoursCompleted: 5}
	repo.On("GetByID", "v-1").Return(stored, nil)
	repo.On("Update", stored).Return(nil).Twice()

	v, err := service.UpdateStatus("v-1", models.VolunteerSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.VolunteerSuspended, v.Status)

	v, err = service.UpdateBackgroundCheck("v-1", models.BackgroundApproved)
	require.NoError(t, err)
	assert.Equal(t, models.BackgroundApproved, v.BackgroundCheck)
	assert.Equal(t, 5.0, v.HoursCompleted)
	repo.AssertExpectations(t)
}

func TestVolunteerService_UpdateVolunteer_EmailCollision(t *testing.T) {
	repo := new(MockVolunteerRepository)
	service := services.NewVolunteerService(repo, new(MockShelterRepository), nil)

	stored := &models.Volunteer{ID: "v-1", Email: "asha@example.com", ShelterID: shelterID}
	repo.On("GetByID", "v-1").Return(stored, nil)
	repo.On("GetByEmail", "taken@example.com").Return(&models.Volunteer{ID: "v-2"}, nil).Once()

	_, err := service.UpdateVolunteer("v-1", services.VolunteerInput{Email: strPtr("taken@example.com")})
	assert.True(t, services.IsValidation(err))

	// Keeping the same email does not look it up again
	repo.On("Update", stored).Return(nil).Once()
	v, err := service.UpdateVolunteer("v-1", services.VolunteerInput{Email: strPtr("ASHA@example.com"), Experience: strPtr("3 years")})
	require.NoError(t, err)
	assert.Equal(t, "3 years", v.Experience)
	repo.AssertExpectations(t)
}
