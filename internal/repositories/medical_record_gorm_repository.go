package repositories

import (
	"fmt"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMedicalRecordRepository is a GORM implementation of MedicalRecordRepository.
type GORMMedicalRecordRepository struct {
	db *gorm.DB
}

// NewGORMMedicalRecordRepository creates a new instance of GORMMedicalRecordRepository.
func NewGORMMedicalRecordRepository(db *gorm.DB) *GORMMedicalRecordRepository {
	return &GORMMedicalRecordRepository{db: db}
}

func (r *GORMMedicalRecordRepository) ListByPet(petID string, recordType models.RecordType) ([]models.MedicalRecord, error) {
	q := r.db.Where("pet_id = ?", petID)
	if recordType != "" {
		q = q.Where("record_type = ?", recordType)
	}

	var records []models.MedicalRecord
	if err := q.Order("date desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list medical records of pet %s: %w", petID, err)
	}
	return records, nil
}

func (r *GORMMedicalRecordRepository) GetByID(id string) (*models.MedicalRecord, error) {
	var rec models.MedicalRecord
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("medical record with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get medical record by ID %s: %w", id, err)
	}
	return &rec, nil
}

func (r *GORMMedicalRecordRepository) Create(rec *models.MedicalRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if err := r.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *GORMMedicalRecordRepository) Update(rec *models.MedicalRecord) error {
	res := r.db.Model(rec).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("failed to update medical record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("medical record with ID %s not found for update: %w", rec.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMMedicalRecordRepository) Delete(id string) error {
	res := r.db.Delete(&models.MedicalRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete medical record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("medical record with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
