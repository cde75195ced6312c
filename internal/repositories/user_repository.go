package repositories

import "github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
	Delete(id string) error
	Count() (int64, error)
}
