package models

import "time"

// RecordType classifies a medical record.
type RecordType string

const (
	RecordVaccination RecordType = "vaccination"
	RecordTreatment   RecordType = "treatment"
	RecordCheckup     RecordType = "checkup"
	RecordSurgery     RecordType = "surgery"
	RecordMedication  RecordType = "medication"
)

// Valid reports whether t is a known record type.
func (t RecordType) Valid() bool {
	switch t {
	case RecordVaccination, RecordTreatment, RecordCheckup, RecordSurgery, RecordMedication:
		return true
	}
	return false
}

// Medication is a drug prescribed during a visit.
type Medication struct {
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Vaccination is a single vaccine given during a visit.
type Vaccination struct {
	Name         string     `json:"name"`
	DateGiven    *time.Time `json:"dateGiven,omitempty"`
	NextDueDate  *time.Time `json:"nextDueDate,omitempty"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	Manufacturer string     `json:"manufacturer,omitempty"`
}

// MedicalRecord is a veterinary visit entry for a pet.
type MedicalRecord struct {
	ID              string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PetID           string        `json:"petId" gorm:"type:varchar(36);not null;index"`
	RecordType      RecordType    `json:"recordType" gorm:"type:varchar(16);not null;index"`
	Title           string        `json:"title" gorm:"type:varchar(200);not null"`
	Description     string        `json:"description,omitempty" gorm:"type:text"`
	Veterinarian    string        `json:"veterinarian" gorm:"type:varchar(100)"`
	Clinic          string        `json:"clinic,omitempty" gorm:"type:varchar(150)"`
	Date            time.Time     `json:"date" gorm:"index"`
	NextAppointment *time.Time    `json:"nextAppointment,omitempty"`
	Medications     []Medication  `json:"medications" gorm:"serializer:json"`
	Vaccinations    []Vaccination `json:"vaccinations" gorm:"serializer:json"`
	Cost            float64       `json:"cost"`
	Notes           string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy       string        `json:"createdBy,omitempty" gorm:"type:varchar(36)"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// VaccinationEntry is one row of a pet's vaccination history, carrying the
// metadata of the visit it was recorded in.
type VaccinationEntry struct {
	Vaccination
	RecordID     string    `json:"recordId"`
	VisitDate    time.Time `json:"visitDate"`
	Veterinarian string    `json:"veterinarian"`
	Clinic       string    `json:"clinic,omitempty"`
}
