package models

import "time"

// PaymentStatus is the settlement state of a donation.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}

// Donation represents a monetary gift to the platform.
type Donation struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        *string       `json:"userId,omitempty" gorm:"type:varchar(36);index"`
	DonorName     string        `json:"donorName" gorm:"type:varchar(100);not null"`
	Email         string        `json:"email" gorm:"type:varchar(255);not null;index"`
	Phone         string        `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Amount        float64       `json:"amount" gorm:"not null"`
	Currency      string        `json:"currency" gorm:"type:varchar(8);default:INR"`
	Message       string        `json:"message,omitempty" gorm:"type:text"`
	Anonymous     bool          `json:"anonymous"`
	OrderID       string        `json:"orderId,omitempty" gorm:"type:varchar(64);index"`
	PaymentID     string        `json:"paymentId,omitempty" gorm:"type:varchar(64)"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(16);default:pending;index"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
