package service

import (
	"context"
	"errors"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSlotAlreadyBooked = errors.New("slot is already booked")

// BookingSubmitter is the seam between the appointment page and whatever records bookings
type BookingSubmitter interface {
	Submit(ctx context.Context, req *entity.BookingRequest) (*entity.BookingConfirmation, error)
}

// acknowledgingSubmitter only confirms receipt; nothing is stored
type acknowledgingSubmitter struct {
	log *logrus.Logger
}

func NewAcknowledgingSubmitter(log *logrus.Logger) BookingSubmitter {
	return &acknowledgingSubmitter{log: log}
}

func (s *acknowledgingSubmitter) Submit(ctx context.Context, req *entity.BookingRequest) (*entity.BookingConfirmation, error) {
	s.log.WithFields(logrus.Fields{
		"doctor_id":  req.DoctorID.String(),
		"session_id": req.SessionID.String(),
		"slot_date":  req.DateKey,
		"slot_time":  req.SlotTime,
	}).Info("Booking acknowledged")

	return &entity.BookingConfirmation{
		DateKey:  req.DateKey,
		SlotTime: req.SlotTime,
		Status:   entity.BookingStatusAcknowledged,
		Message:  entity.MessageBookingConfirmed,
	}, nil
}

// persistentSubmitter stores confirmed bookings and refuses a second booking of the same slot
type persistentSubmitter struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	auditService AuditService
	directory    DoctorDirectory
}

func NewPersistentSubmitter(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService AuditService,
	directory DoctorDirectory,
) BookingSubmitter {
	return &persistentSubmitter{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		auditService: auditService,
		directory:    directory,
	}
}

func (s *persistentSubmitter) Submit(ctx context.Context, req *entity.BookingRequest) (*entity.BookingConfirmation, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := s.bookingRepo.FindActiveBySlot(tx, req.DoctorID, req.DateKey, req.SlotTime)
	if err != nil {
		s.log.Warnf("Failed to check existing booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	fees := decimal.Zero
	if doctor, ok := s.directory.FindByID(req.DoctorID); ok {
		fees = doctor.Fees
	}

	booking := &entity.Booking{
		DoctorID:  req.DoctorID,
		SessionID: req.SessionID,
		SlotDate:  req.DateKey,
		SlotTime:  req.SlotTime,
		SlotAt:    req.SlotAt,
		Fees:      fees,
	}
	booking.Confirm()

	if err := s.bookingRepo.Create(tx, booking); err != nil {
		if database.IsDuplicateKeyError(err, "slot") {
			return nil, ErrSlotAlreadyBooked
		}
		s.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	actor := "session:" + req.SessionID.String()
	if err := s.auditService.LogCreate(ctx, tx, actor, entity.AuditActionBookingSubmit, "booking", booking.ID.String(), booking); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	s.log.Infof("Booking created: id=%s, doctor=%s, date=%s, time=%s", booking.ID, req.DoctorID, req.DateKey, req.SlotTime)

	return &entity.BookingConfirmation{
		BookingID: &booking.ID,
		DateKey:   booking.SlotDate,
		SlotTime:  booking.SlotTime,
		Status:    booking.Status,
		Message:   entity.MessageBookingConfirmed,
	}, nil
}
