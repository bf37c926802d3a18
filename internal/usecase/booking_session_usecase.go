package usecase

import (
	"context"
	"errors"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
	"mediconnect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
)

type BookingSessionUsecase interface {
	StartSession(ctx context.Context, req *dto.StartBookingSessionRequest) (*dto.BookingSessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.BookingSessionResponse, error)
	ChangeDoctor(ctx context.Context, sessionID uuid.UUID, req *dto.ChangeDoctorRequest) (*dto.BookingSessionResponse, error)
	SelectDay(ctx context.Context, sessionID uuid.UUID, req *dto.SelectDayRequest) (*dto.BookingSessionResponse, error)
	// SelectSlot returns entity.ErrSlotUnavailable together with the unchanged
	// session carrying the rejection notice.
	SelectSlot(ctx context.Context, sessionID uuid.UUID, req *dto.SelectSlotRequest) (*dto.BookingSessionResponse, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*dto.BookingConfirmationResponse, error)
}

type bookingSessionUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.BookingSessionRepository
	directory   service.DoctorDirectory
	generator   *service.SlotGenerator
	submitter   service.BookingSubmitter
	notifier    service.Notifier
	metrics     *metrics.Collector
	sessionTTL  time.Duration
	now         Clock
}

func NewBookingSessionUsecase(
	log *logrus.Logger,
	sessionRepo repository.BookingSessionRepository,
	directory service.DoctorDirectory,
	generator *service.SlotGenerator,
	submitter service.BookingSubmitter,
	notifier service.Notifier,
	collector *metrics.Collector,
	sessionTTL time.Duration,
	now Clock,
) BookingSessionUsecase {
	if now == nil {
		now = time.Now
	}
	return &bookingSessionUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		directory:   directory,
		generator:   generator,
		submitter:   submitter,
		notifier:    notifier,
		metrics:     collector,
		sessionTTL:  sessionTTL,
		now:         now,
	}
}

func (u *bookingSessionUsecase) StartSession(ctx context.Context, req *dto.StartBookingSessionRequest) (*dto.BookingSessionResponse, error) {
	doctor, err := u.findDoctor(req.DoctorID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	session := entity.NewBookingSession(doctor.ID, u.generator.Generate(now), now)
	if err := u.sessionRepo.Save(ctx, session, u.sessionTTL); err != nil {
		u.log.Warnf("Failed to save booking session: %+v", err)
		return nil, err
	}

	u.metrics.RecordSessionStarted()
	return u.toResponse(session), nil
}

func (u *bookingSessionUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.toResponse(session), nil
}

func (u *bookingSessionUsecase) ChangeDoctor(ctx context.Context, sessionID uuid.UUID, req *dto.ChangeDoctorRequest) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	doctor, err := u.findDoctor(req.DoctorID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	session.SelectDoctor(doctor.ID, u.generator.Generate(now), now)
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return u.toResponse(session), nil
}

func (u *bookingSessionUsecase) SelectDay(ctx context.Context, sessionID uuid.UUID, req *dto.SelectDayRequest) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.SelectDay(*req.DayIndex, u.now()); err != nil {
		return nil, err
	}
	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return u.toResponse(session), nil
}

func (u *bookingSessionUsecase) SelectSlot(ctx context.Context, sessionID uuid.UUID, req *dto.SelectSlotRequest) (*dto.BookingSessionResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = session.SelectSlot(req.Time, u.now())
	if errors.Is(err, entity.ErrSlotUnavailable) {
		notice := entity.Notice{Kind: entity.NoticeSlotUnavailable, Message: entity.MessageSlotUnavailable}
		u.notifier.Notify(ctx, session.ID, notice)

		resp := u.toResponse(session)
		resp.Notice = converter.NoticeToResponse(notice)
		return resp, err
	}
	if err != nil {
		return nil, err
	}

	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	return u.toResponse(session), nil
}

func (u *bookingSessionUsecase) Submit(ctx context.Context, sessionID uuid.UUID) (*dto.BookingConfirmationResponse, error) {
	session, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	req, err := session.BookingRequest()
	if err != nil {
		return nil, err
	}

	confirmation, err := u.submitter.Submit(ctx, req)
	if err != nil {
		if !errors.Is(err, service.ErrSlotAlreadyBooked) {
			u.log.Warnf("Failed to submit booking: %+v", err)
		}
		return nil, err
	}

	// A submitted session is finished; a second submit gets ErrSessionNotFound.
	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		u.log.Warnf("Failed to delete booking session %s (expires with TTL): %+v", session.ID, err)
	}

	u.notifier.Notify(ctx, session.ID, entity.Notice{Kind: entity.NoticeBookingConfirmed, Message: confirmation.Message})
	u.metrics.RecordBooking(string(confirmation.Status))

	return converter.BookingConfirmationToResponse(req, confirmation), nil
}

func (u *bookingSessionUsecase) loadSession(ctx context.Context, sessionID uuid.UUID) (*entity.BookingSession, error) {
	session, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find booking session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *bookingSessionUsecase) save(ctx context.Context, session *entity.BookingSession) error {
	if err := u.sessionRepo.Save(ctx, session, u.sessionTTL); err != nil {
		u.log.Warnf("Failed to save booking session: %+v", err)
		return err
	}
	return nil
}

func (u *bookingSessionUsecase) findDoctor(rawID string) (*entity.Doctor, error) {
	doctorID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, ok := u.directory.FindByID(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (u *bookingSessionUsecase) toResponse(session *entity.BookingSession) *dto.BookingSessionResponse {
	doctor, _ := u.directory.FindByID(session.DoctorID)
	return converter.BookingSessionToResponse(session, doctor, u.directory.CurrencySymbol())
}
