package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// MedicalRecordRepository defines the interface for medical record data access.
type MedicalRecordRepository interface {
	// ListByPet returns the pet's records, most recent visit first. An empty
	// recordType returns every type.
	ListByPet(petID string, recordType models.RecordType) ([]models.MedicalRecord, error)
	GetByID(id string) (*models.MedicalRecord, error)
	Create(record *models.MedicalRecord) error
	Update(record *models.MedicalRecord) error
	Delete(id string) error
}
