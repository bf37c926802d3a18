package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/infrastructure/storage"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidFees    = errors.New("fees must be a non-negative amount")
)

type DoctorUsecase interface {
	// Public directory reads
	ListDoctors(ctx context.Context, speciality string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetRelatedDoctors(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorListResponse, error)
	GetDoctorSlots(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorSlotsResponse, error)

	// Admin management
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
	UploadDoctorImage(ctx context.Context, doctorID uuid.UUID, file io.Reader) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	directory    service.DoctorDirectory
	generator    *service.SlotGenerator
	uploader     storage.ImageUploader
	now          Clock
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	directory service.DoctorDirectory,
	generator *service.SlotGenerator,
	uploader storage.ImageUploader,
	now Clock,
) DoctorUsecase {
	if now == nil {
		now = time.Now
	}
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		directory:    directory,
		generator:    generator,
		uploader:     uploader,
		now:          now,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, speciality string) (*dto.DoctorListResponse, error) {
	return u.listResponse(u.directory.BySpeciality(speciality)), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, ok := u.directory.FindByID(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor, u.directory.CurrencySymbol()), nil
}

func (u *doctorUsecase) GetRelatedDoctors(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorListResponse, error) {
	if _, ok := u.directory.FindByID(doctorID); !ok {
		return nil, ErrDoctorNotFound
	}
	return u.listResponse(u.directory.Related(doctorID)), nil
}

func (u *doctorUsecase) GetDoctorSlots(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorSlotsResponse, error) {
	if _, ok := u.directory.FindByID(doctorID); !ok {
		return nil, ErrDoctorNotFound
	}

	return &dto.DoctorSlotsResponse{
		DoctorID: doctorID,
		Days:     converter.DayBucketsToResponses(u.generator.Generate(u.now())),
	}, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}
	return u.listResponse(doctors), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	fees, err := parseFees(req.Fees)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		Name:            req.Name,
		Image:           req.Image,
		Degree:          req.Degree,
		Speciality:      req.Speciality,
		ExperienceYears: req.ExperienceYears,
		About:           req.About,
		Fees:            fees,
		Available:       req.Available,
	}
	if doctor.Available == nil {
		available := true
		doctor.Available = &available
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	resp := converter.DoctorToResponse(doctor, u.directory.CurrencySymbol())
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reloadDirectory(ctx)
	return resp, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor, u.directory.CurrencySymbol())

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Image != "" {
		doctor.Image = req.Image
	}
	if req.Degree != "" {
		doctor.Degree = req.Degree
	}
	if req.Speciality != "" {
		doctor.Speciality = req.Speciality
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.About != "" {
		doctor.About = req.About
	}
	if req.Fees != "" {
		fees, err := parseFees(req.Fees)
		if err != nil {
			return nil, err
		}
		doctor.Fees = fees
	}
	if req.Available != nil {
		doctor.Available = req.Available
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor, u.directory.CurrencySymbol())
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reloadDirectory(ctx)
	return newValue, nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	rowsAffected, err := u.doctorRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor, u.directory.CurrencySymbol())
	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorDelete, "doctor", doctorID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reloadDirectory(ctx)
	return nil
}

func (u *doctorUsecase) UploadDoctorImage(ctx context.Context, doctorID uuid.UUID, file io.Reader) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	imageURL, err := u.uploader.UploadDoctorImage(ctx, doctorID.String(), file)
	if err != nil {
		if !errors.Is(err, storage.ErrUploadsDisabled) {
			u.log.Warnf("Failed to upload doctor image: %+v", err)
		}
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldImage := doctor.Image
	doctor.Image = imageURL
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor image: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorImage, "doctor", doctorID.String(), oldImage, imageURL); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reloadDirectory(ctx)
	return converter.DoctorToResponse(doctor, u.directory.CurrencySymbol()), nil
}

func (u *doctorUsecase) listResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	symbol := u.directory.CurrencySymbol()
	return &dto.DoctorListResponse{
		Doctors:        converter.DoctorsToResponses(doctors, symbol),
		Total:          len(doctors),
		CurrencySymbol: symbol,
	}
}

// reloadDirectory refreshes the shared snapshot after a write; the cron job retries on failure
func (u *doctorUsecase) reloadDirectory(ctx context.Context) {
	if err := u.directory.Load(ctx); err != nil {
		u.log.Warnf("Failed to reload doctor directory: %+v", err)
	}
}

func parseFees(raw string) (decimal.Decimal, error) {
	fees, err := decimal.NewFromString(raw)
	if err != nil || fees.IsNegative() {
		return decimal.Zero, ErrInvalidFees
	}
	return fees, nil
}

func actorFromContext(ctx context.Context) string {
	if email, ok := middleware.GetEmailFromContext(ctx); ok && email != "" {
		return email
	}
	return "system"
}
