package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Doctor").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB, filter domainRepo.BookingFilter) ([]entity.Booking, error) {
	query := db.Preload("Doctor")
	if filter.DoctorID != nil {
		query = query.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var bookings []entity.Booking
	if err := query.Order("slot_at ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindActiveBySlot looks for a non-cancelled booking holding the same doctor, day and time
func (r *bookingRepository) FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, slotDate, slotTime string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("doctor_id = ? AND slot_date = ? AND slot_time = ? AND status != ?", doctorID, slotDate, slotTime, entity.BookingStatusCancelled).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels only a booking that is still active.
// Returns affected rows: 0 means it was already cancelled.
func (r *bookingRepository) CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status != ?", id, entity.BookingStatusCancelled).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}
