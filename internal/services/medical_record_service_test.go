package services_test

import (
	"testing"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestMedicalRecordService_CreateRecord(t *testing.T) {
	repo := new(MockMedicalRecordRepository)
	petRepo := new(MockPetRepository)
	service := services.NewMedicalRecordService(repo, petRepo)

	recordType := models.RecordCheckup
	date := day("2024-03-01")
	in := services.MedicalRecordInput{
		PetID:        strPtr(petID),
		RecordType:   &recordType,
		Title:        strPtr("Annual checkup"),
		Veterinarian: strPtr("Dr. Rao"),
		Date:         &date,
	}

	petRepo.On("GetByID", petID).Return(&models.Pet{ID: petID}, nil).Once()
	repo.On("Create", mock.MatchedBy(func(r *models.MedicalRecord) bool {
		return r.CreatedBy == "admin-1" && r.Medications != nil && r.Vaccinations != nil
	})).Return(nil).Once()

	rec, err := service.CreateRecord(in, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Annual checkup", rec.Title)
	assert.Equal(t, date, rec.Date)
	repo.AssertExpectations(t)
}

func TestMedicalRecordService_CreateRecord_Rejections(t *testing.T) {
	repo := new(MockMedicalRecordRepository)
	petRepo := new(MockPetRepository)
	service := services.NewMedicalRecordService(repo, petRepo)

	bogus := models.RecordType("grooming")
	date := day("2024-03-01")
	in := services.MedicalRecordInput{
		PetID:        strPtr(petID),
		RecordType:   &bogus,
		Title:        strPtr("Bath"),
		Veterinarian: strPtr("Dr. Rao"),
		Date:         &date,
	}
	_, err := service.CreateRecord(in, "admin-1")
	assert.True(t, services.IsValidation(err))

	in.RecordType = nil
	_, err = service.CreateRecord(in, "admin-1")
	assert.True(t, services.IsValidation(err))

	valid := models.RecordTreatment
	in.RecordType = &valid
	petRepo.On("GetByID", petID).Return(nil, notFound()).Once()
	_, err = service.CreateRecord(in, "admin-1")
	require.Error(t, err)
	assert.Equal(t, "Pet not found", err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestMedicalRecordService_VaccinationHistory(t *testing.T) {
	repo := new(MockMedicalRecordRepository)
	petRepo := new(MockPetRepository)
	service := services.NewMedicalRecordService(repo, petRepo)

	given := day("2023-05-10")
	records := []models.MedicalRecord{
		{
			ID:           "r-2",
			Date:         day("2024-01-15"),
			Veterinarian: "Dr. Rao",
			Clinic:       "City Vet",
			Vaccinations: []models.Vaccination{{Name: "Rabies"}},
		},
		{
			ID:           "r-1",
			Date:         day("2023-06-01"),
			Veterinarian: "Dr. Sen",
			Vaccinations: []models.Vaccination{{Name: "Distemper", DateGiven: &given}, {Name: "Parvo"}},
		},
	}
	petRepo.On("GetByID", petID).Return(&models.Pet{ID: petID}, nil).Once()
	repo.On("ListByPet", petID, models.RecordVaccination).Return(records, nil).Once()

	history, err := service.VaccinationHistory(petID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "Distemper", history[0].Name)
	assert.Equal(t, "Parvo", history[1].Name)
	assert.Equal(t, day("2023-06-01"), *history[1].DateGiven)
	assert.Equal(t, "Rabies", history[2].Name)
	assert.Equal(t, "r-2", history[2].RecordID)
	assert.Equal(t, "City Vet", history[2].Clinic)
	assert.Equal(t, day("2024-01-15"), history[2].VisitDate)
}

func TestMedicalRecordService_ListByPet(t *testing.T) {
	repo := new(MockMedicalRecordRepository)
	petRepo := new(MockPetRepository)
	service := services.NewMedicalRecordService(repo, petRepo)

	_, err := service.ListByPet(petID, models.RecordType("grooming"))
	assert.True(t, services.IsValidation(err))

	_, err = service.ListByPet("not-a-uuid", "")
	assert.True(t, services.IsValidation(err))

	petRepo.On("GetByID", petID).Return(&models.Pet{ID: petID}, nil).Once()
	repo.On("ListByPet", petID, models.RecordSurgery).Return([]models.MedicalRecord{{ID: "r-1"}}, nil).Once()
	recs, err := service.ListByPet(petID, models.RecordSurgery)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
