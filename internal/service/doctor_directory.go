package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DoctorDirectory is the shared, read-mostly list of doctors plus the currency symbol.
// It is built once at the composition root and handed to every consumer.
type DoctorDirectory interface {
	Load(ctx context.Context) error
	Replace(doctors []entity.Doctor)
	Doctors() []entity.Doctor
	FindByID(id uuid.UUID) (*entity.Doctor, bool)
	BySpeciality(speciality string) []entity.Doctor
	Related(id uuid.UUID) []entity.Doctor
	CurrencySymbol() string
}

type doctorDirectory struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	currencySymbol string

	mu      sync.RWMutex
	doctors []entity.Doctor
}

func NewDoctorDirectory(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, currencySymbol string) DoctorDirectory {
	return &doctorDirectory{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		currencySymbol: currencySymbol,
	}
}

// Load replaces the snapshot with the current database contents
func (d *doctorDirectory) Load(ctx context.Context) error {
	doctors, err := d.doctorRepo.FindAll(d.db.WithContext(ctx))
	if err != nil {
		d.log.Warnf("Failed to load doctor directory: %+v", err)
		return fmt.Errorf("load doctor directory: %w", err)
	}

	d.Replace(doctors)
	d.log.Infof("Doctor directory loaded: %d doctors", len(doctors))
	return nil
}

func (d *doctorDirectory) Replace(doctors []entity.Doctor) {
	snapshot := make([]entity.Doctor, len(doctors))
	copy(snapshot, doctors)

	d.mu.Lock()
	d.doctors = snapshot
	d.mu.Unlock()
}

func (d *doctorDirectory) Doctors() []entity.Doctor {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.Doctor, len(d.doctors))
	copy(out, d.doctors)
	return out
}

func (d *doctorDirectory) FindByID(id uuid.UUID) (*entity.Doctor, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.doctors {
		if d.doctors[i].ID == id {
			doctor := d.doctors[i]
			return &doctor, true
		}
	}
	return nil, false
}

// BySpeciality matches case-insensitively; an empty speciality returns everyone
func (d *doctorDirectory) BySpeciality(speciality string) []entity.Doctor {
	if speciality == "" {
		return d.Doctors()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.Doctor, 0)
	for _, doctor := range d.doctors {
		if strings.EqualFold(doctor.Speciality, speciality) {
			out = append(out, doctor)
		}
	}
	return out
}

// Related lists the other doctors sharing the given doctor's speciality
func (d *doctorDirectory) Related(id uuid.UUID) []entity.Doctor {
	doctor, ok := d.FindByID(id)
	if !ok {
		return []entity.Doctor{}
	}

	out := make([]entity.Doctor, 0)
	for _, candidate := range d.BySpeciality(doctor.Speciality) {
		if candidate.ID != id {
			out = append(out, candidate)
		}
	}
	return out
}

func (d *doctorDirectory) CurrencySymbol() string {
	return d.currencySymbol
}
