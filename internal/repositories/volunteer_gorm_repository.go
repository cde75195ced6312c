package repositories

import (
	"fmt"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMVolunteerRepository is a GORM implementation of VolunteerRepository.
type GORMVolunteerRepository struct {
	db *gorm.DB
}

// NewGORMVolunteerRepository creates a new instance of GORMVolunteerRepository.
func NewGORMVolunteerRepository(db *gorm.DB) *GORMVolunteerRepository {
	return &GORMVolunteerRepository{db: db}
}

// List retrieves volunteers matching the filter with their shelter projection.
func (r *GORMVolunteerRepository) List(filter VolunteerFilter) ([]models.Volunteer, error) {
	q := r.db.Model(&models.Volunteer{}).Preload("Shelter", preloadShelterRef)
	if filter.ShelterID != "" {
		q = q.Where("shelter_id = ?", filter.ShelterID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.BackgroundCheck != "" {
		q = q.Where("background_check = ?", filter.BackgroundCheck)
	}
	if filter.Skill != "" {
		// skills is stored as a JSON array; a substring match on the encoded text is enough.
		q = q.Where(likeClause("skills"), likePattern(filter.Skill))
	}

	var volunteers []models.Volunteer
	if err := q.Order("created_at desc").Find(&volunteers).Error; err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	return volunteers, nil
}

// GetByID retrieves a single volunteer by ID.
func (r *GORMVolunteerRepository) GetByID(id string) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := r.db.Preload("Shelter", preloadShelterRef).First(&v, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("volunteer with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get volunteer by ID %s: %w", id, err)
	}
	return &v, nil
}

// GetByEmail retrieves a volunteer by email.
func (r *GORMVolunteerRepository) GetByEmail(email string) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := r.db.First(&v, "email = ?", email).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("volunteer with email %s not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get volunteer by email %s: %w", email, err)
	}
	return &v, nil
}

// Create creates a new volunteer.
func (r *GORMVolunteerRepository) Create(v *models.Volunteer) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.Status == "" {
		v.Status = models.VolunteerActive
	}
	if v.BackgroundCheck == "" {
		v.BackgroundCheck = models.BackgroundPending
	}
	if v.StartDate.IsZero() {
		v.StartDate = time.Now()
	}
	if err := r.db.Omit(clause.Associations).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create volunteer: %w", err)
	}
	return nil
}

// Update saves every column of an existing volunteer except the hour counter,
// which only AddHours may change.
func (r *GORMVolunteerRepository) Update(v *models.Volunteer) error {
	res := r.db.Model(v).Select("*").Omit(clause.Associations, "hours_completed", "created_at").Updates(v)
	if res.Error != nil {
		return fmt.Errorf("failed to update volunteer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("volunteer with ID %s not found for update: %w", v.ID, ErrNotFound)
	}
	return nil
}

// AddHours atomically increments hoursCompleted and returns the updated volunteer.
func (r *GORMVolunteerRepository) AddHours(id string, hours float64) (*models.Volunteer, error) {
	res := r.db.Model(&models.Volunteer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hours_completed": gorm.Expr("hours_completed + ?", hours),
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to add hours to volunteer %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("volunteer with ID %s not found for hours update: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete removes a volunteer by ID.
func (r *GORMVolunteerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Volunteer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete volunteer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("volunteer with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// CountByStatus returns the number of volunteers in the given status.
func (r *GORMVolunteerRepository) CountByStatus(status models.VolunteerStatus) (int64, error) {
	var n int64
	if err := r.db.Model(&models.Volunteer{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count volunteers: %w", err)
	}
	return n, nil
}
