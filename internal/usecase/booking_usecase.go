package usecase

import (
	"context"
	"errors"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidBookingStatus    = errors.New("unknown booking status")
)

// BookingUsecase is the back-office view over bookings kept by the persisting submitter.
type BookingUsecase interface {
	GetAllBookings(ctx context.Context, doctorID *uuid.UUID, status string) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	bookingRepo    repository.BookingRepository
	auditService   service.AuditService
	currencySymbol string
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
	currencySymbol string,
) BookingUsecase {
	return &bookingUsecase{
		db:             db,
		log:            log,
		bookingRepo:    bookingRepo,
		auditService:   auditService,
		currencySymbol: currencySymbol,
	}
}

func (u *bookingUsecase) GetAllBookings(ctx context.Context, doctorID *uuid.UUID, status string) (*dto.BookingListResponse, error) {
	filter := repository.BookingFilter{DoctorID: doctorID}
	if status != "" {
		parsed, err := parseBookingStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}

	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings, u.currencySymbol),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking, u.currencySymbol), nil
}

// CancelBooking frees the slot again; the unique slot index ignores cancelled rows.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.IsCancelled() {
		return ErrBookingAlreadyCancelled
	}

	affected, err := u.bookingRepo.CancelBooking(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		return ErrBookingAlreadyCancelled
	}

	oldStatus := booking.Status
	booking.Status = entity.BookingStatusCancelled
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionBookingCancel, "booking", bookingID.String(), oldStatus, booking.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Booking cancelled: id=%s, doctor=%s, date=%s, time=%s", bookingID, booking.DoctorID, booking.SlotDate, booking.SlotTime)
	return nil
}

func parseBookingStatus(raw string) (entity.BookingStatus, error) {
	switch status := entity.BookingStatus(raw); status {
	case entity.BookingStatusAcknowledged, entity.BookingStatusPending,
		entity.BookingStatusConfirmed, entity.BookingStatusCancelled:
		return status, nil
	}
	return "", ErrInvalidBookingStatus
}
