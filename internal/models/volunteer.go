package models

import "time"

// BackgroundCheck is the vetting state of a volunteer.
type BackgroundCheck string

const (
	BackgroundPending  BackgroundCheck = "pending"
	BackgroundApproved BackgroundCheck = "approved"
	BackgroundRejected BackgroundCheck = "rejected"
)

// Valid reports whether b is a known background check state.
func (b BackgroundCheck) Valid() bool {
	switch b {
	case BackgroundPending, BackgroundApproved, BackgroundRejected:
		return true
	}
	return false
}

// VolunteerStatus is the engagement state of a volunteer.
type VolunteerStatus string

const (
	VolunteerActive    VolunteerStatus = "active"
	VolunteerInactive  VolunteerStatus = "inactive"
	VolunteerSuspended VolunteerStatus = "suspended"
)

// Valid reports whether s is a known volunteer status.
func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerActive, VolunteerInactive, VolunteerSuspended:
		return true
	}
	return false
}

// EmergencyContact is who to call for a volunteer.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Volunteer represents a person helping out at a shelter.
type Volunteer struct {
	ID               string              `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           *string             `json:"userId,omitempty" gorm:"type:varchar(36);index"`
	Name             string              `json:"name" gorm:"type:varchar(100);not null"`
	Email            string              `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Phone            string              `json:"phone" gorm:"type:varchar(30)"`
	Address          string              `json:"address,omitempty" gorm:"type:varchar(255)"`
	ShelterID        string              `json:"shelterId" gorm:"type:varchar(36);not null;index"`
	Shelter          *ShelterRef         `json:"shelter,omitempty" gorm:"foreignKey:ShelterID"`
	Skills           []string            `json:"skills" gorm:"serializer:json"`
	Availability     map[string][]string `json:"availability,omitempty" gorm:"serializer:json"` // weekday -> time slots
	Experience       string              `json:"experience,omitempty" gorm:"type:text"`
	EmergencyContact EmergencyContact    `json:"emergencyContact" gorm:"embedded;embeddedPrefix:emergency_"`
	BackgroundCheck  BackgroundCheck     `json:"backgroundCheck" gorm:"type:varchar(16);default:pending"`
	Status           VolunteerStatus     `json:"status" gorm:"type:varchar(16);default:active;index"`
	HoursCompleted   float64             `json:"hoursCompleted" gorm:"default:0"`
	StartDate        time.Time           `json:"startDate"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}
