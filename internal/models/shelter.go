package models

import "time"

// Coordinates is a geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Shelter represents an animal shelter hosting pets and volunteers.
type Shelter struct {
	ID               string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name             string            `json:"name" gorm:"type:varchar(150);not null;index"`
	Address          string            `json:"address" gorm:"type:varchar(255)"`
	City             string            `json:"city" gorm:"type:varchar(100);index"`
	State            string            `json:"state" gorm:"type:varchar(100);index"`
	ZipCode          string            `json:"zipCode" gorm:"type:varchar(20)"`
	Phone            string            `json:"phone" gorm:"type:varchar(30)"`
	Email            string            `json:"email" gorm:"type:varchar(255)"`
	Website          string            `json:"website,omitempty" gorm:"type:varchar(255)"`
	Description      string            `json:"description,omitempty" gorm:"type:text"`
	Capacity         int               `json:"capacity"`
	CurrentOccupancy int               `json:"currentOccupancy" gorm:"default:0"`
	Coordinates      Coordinates       `json:"coordinates" gorm:"embedded;embeddedPrefix:coord_"`
	OperatingHours   map[string]string `json:"operatingHours,omitempty" gorm:"serializer:json"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ShelterRef is the shallow shelter projection joined into pet and volunteer listings.
type ShelterRef struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name    string `json:"name" gorm:"type:varchar(150)"`
	Address string `json:"address" gorm:"type:varchar(255)"`
	City    string `json:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" gorm:"type:varchar(100)"`
	Phone   string `json:"phone" gorm:"type:varchar(30)"`
}

// TableName maps ShelterRef onto the shelters table.
func (ShelterRef) TableName() string { return "shelters" }
