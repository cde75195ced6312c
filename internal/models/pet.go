package models

import "time"

// AdoptionStatus tracks where a pet is in the adoption process.
type AdoptionStatus string

const (
	AdoptionAvailable AdoptionStatus = "available"
	AdoptionPending   AdoptionStatus = "pending"
	AdoptionAdopted   AdoptionStatus = "adopted"
)

// Valid reports whether s is a known adoption status.
func (s AdoptionStatus) Valid() bool {
	switch s {
	case AdoptionAvailable, AdoptionPending, AdoptionAdopted:
		return true
	}
	return false
}

// Pet represents an animal listed for adoption by a shelter.
type Pet struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string         `json:"name" gorm:"type:varchar(100);not null;index"`
	Type           string         `json:"type" gorm:"type:varchar(50);not null;index"` // dog, cat, bird, ...
	Breed          string         `json:"breed" gorm:"type:varchar(100);index"`
	Age            int            `json:"age"`
	Gender         string         `json:"gender" gorm:"type:varchar(10)"`
	Size           string         `json:"size,omitempty" gorm:"type:varchar(10)"`
	Color          string         `json:"color,omitempty" gorm:"type:varchar(50)"`
	Weight         float64        `json:"weight,omitempty"`
	Description    string         `json:"description,omitempty" gorm:"type:text"`
	Images         []string       `json:"images,omitempty" gorm:"serializer:json"`
	Vaccinated     bool           `json:"vaccinated"`
	Neutered       bool           `json:"neutered"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus" gorm:"type:varchar(16);default:available;index"`
	AdoptionFee    float64        `json:"adoptionFee"`
	ShelterID      string         `json:"shelterId" gorm:"type:varchar(36);not null;index"`
	Shelter        *ShelterRef    `json:"shelter,omitempty" gorm:"foreignKey:ShelterID"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
