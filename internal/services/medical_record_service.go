package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
)

// MedicalRecordService handles business logic related to medical records.
type MedicalRecordService struct {
	repo    repositories.MedicalRecordRepository
	petRepo repositories.PetRepository
}

// NewMedicalRecordService creates a new MedicalRecordService.
func NewMedicalRecordService(repo repositories.MedicalRecordRepository, petRepo repositories.PetRepository) *MedicalRecordService {
	return &MedicalRecordService{
		repo:    repo,
		petRepo: petRepo,
	}
}

// MedicalRecordInput carries the writable medical record fields.
type MedicalRecordInput struct {
	PetID           *string
	RecordType      *models.RecordType
	Title           *string
	Description     *string
	Veterinarian    *string
	Clinic          *string
	Date            *time.Time
	NextAppointment *time.Time
	Medications     []models.Medication
	Vaccinations    []models.Vaccination
	Cost            *float64
	Notes           *string
}

// ListByPet returns a pet's records, optionally of a single type.
func (s *MedicalRecordService) ListByPet(petID string, recordType models.RecordType) ([]models.MedicalRecord, error) {
	if recordType != "" && !recordType.Valid() {
		return nil, invalid("Invalid record type")
	}
	if err := s.requirePet(petID); err != nil {
		return nil, err
	}
	return s.repo.ListByPet(petID, recordType)
}

// GetRecord returns a single medical record.
func (s *MedicalRecordService) GetRecord(id string) (*models.MedicalRecord, error) {
	return s.repo.GetByID(id)
}

// CreateRecord validates the input and stores a record for an existing pet.
func (s *MedicalRecordService) CreateRecord(in MedicalRecordInput, createdBy string) (*models.MedicalRecord, error) {
	if blank(in.PetID) || in.RecordType == nil || blank(in.Title) || blank(in.Veterinarian) || in.Date == nil {
		return nil, invalid("Please provide all required fields")
	}
	if !in.RecordType.Valid() {
		return nil, invalid("Invalid record type. Must be one of: vaccination, treatment, checkup, surgery, medication")
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, invalid("Cost cannot be negative")
	}
	if err := s.requirePet(*in.PetID); err != nil {
		return nil, err
	}

	rec := &models.MedicalRecord{
		Medications:  []models.Medication{},
		Vaccinations: []models.Vaccination{},
		CreatedBy:    createdBy,
	}
	applyMedicalInput(rec, in)
	if err := s.repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRecord merges the supplied fields into the stored record, checking a
// new pet id before writing.
func (s *MedicalRecordService) UpdateRecord(id string, in MedicalRecordInput) (*models.MedicalRecord, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	for _, f := range []*string{in.PetID, in.Title, in.Veterinarian} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, invalid("Required medical record fields cannot be empty")
		}
	}
	if in.RecordType != nil && !in.RecordType.Valid() {
		return nil, invalid("Invalid record type. Must be one of: vaccination, treatment, checkup, surgery, medication")
	}
	if in.Cost != nil && *in.Cost < 0 {
		return nil, invalid("Cost cannot be negative")
	}
	if in.PetID != nil && *in.PetID != rec.PetID {
		if err := s.requirePet(*in.PetID); err != nil {
			return nil, err
		}
	}

	applyMedicalInput(rec, in)
	if err := s.repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteRecord removes a medical record.
func (s *MedicalRecordService) DeleteRecord(id string) error {
	return s.repo.Delete(id)
}

// VaccinationHistory flattens the vaccinations of every vaccination-type record
// of the pet into one list, oldest first. Each entry is dated by when the
// vaccine was given, falling back to the visit date.
func (s *MedicalRecordService) VaccinationHistory(petID string) ([]models.VaccinationEntry, error) {
	if err := s.requirePet(petID); err != nil {
		return nil, err
	}
	records, err := s.repo.ListByPet(petID, models.RecordVaccination)
	if err != nil {
		return nil, err
	}

	history := make([]models.VaccinationEntry, 0)
	for _, rec := range records {
		for _, vac := range rec.Vaccinations {
			if vac.DateGiven == nil {
				given := rec.Date
				vac.DateGiven = &given
			}
			history = append(history, models.VaccinationEntry{
				Vaccination:  vac,
				RecordID:     rec.ID,
				VisitDate:    rec.Date,
				Veterinarian: rec.Veterinarian,
				Clinic:       rec.Clinic,
			})
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].DateGiven.Before(*history[j].DateGiven)
	})
	return history, nil
}

func (s *MedicalRecordService) requirePet(petID string) error {
	if !ValidPetID(petID) {
		return invalid("Pet not found")
	}
	if _, err := s.petRepo.GetByID(petID); err != nil {
		if IsNotFound(err) {
			return invalid("Pet not found")
		}
		return err
	}
	return nil
}

func applyMedicalInput(rec *models.MedicalRecord, in MedicalRecordInput) {
	setString(&rec.PetID, in.PetID)
	if in.RecordType != nil {
		rec.RecordType = *in.RecordType
	}
	setString(&rec.Title, in.Title)
	setString(&rec.Description, in.Description)
	setString(&rec.Veterinarian, in.Veterinarian)
	setString(&rec.Clinic, in.Clinic)
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.NextAppointment != nil {
		rec.NextAppointment = in.NextAppointment
	}
	if in.Medications != nil {
		rec.Medications = in.Medications
	}
	if in.Vaccinations != nil {
		rec.Vaccinations = in.Vaccinations
	}
	if in.Cost != nil {
		rec.Cost = *in.Cost
	}
	setString(&rec.Notes, in.Notes)
}
