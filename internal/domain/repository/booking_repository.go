package repository

import (
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB, filter BookingFilter) ([]entity.Booking, error)
	FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, slotDate, slotTime string) (*entity.Booking, error)
	CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error)
}

// BookingFilter narrows admin listings; zero values match everything.
type BookingFilter struct {
	DoctorID *uuid.UUID
	Status   entity.BookingStatus
}
