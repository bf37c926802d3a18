package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusAcknowledged BookingStatus = "acknowledged"
	BookingStatusPending      BookingStatus = "pending"
	BookingStatusConfirmed    BookingStatus = "confirmed"
	BookingStatusCancelled    BookingStatus = "cancelled"
)

// Booking is a submitted appointment kept when bookings are persisted
type Booking struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	SessionID uuid.UUID       `gorm:"type:uuid;not null" json:"session_id"`
	SlotDate  string          `gorm:"type:varchar(12);not null" json:"slot_date"`
	SlotTime  string          `gorm:"type:varchar(8);not null" json:"slot_time"`
	SlotAt    time.Time       `gorm:"not null;index" json:"slot_at"`
	Fees      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fees"`
	Status    BookingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Confirm changes booking status to confirmed
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}
