package database

import (
	"context"
	"fmt"
	"io"
	"os"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type doctorSeedFile struct {
	Doctors []doctorSeed `yaml:"doctors"`
}

type doctorSeed struct {
	Name            string `yaml:"name"`
	Image           string `yaml:"image"`
	Degree          string `yaml:"degree"`
	Speciality      string `yaml:"speciality"`
	ExperienceYears int    `yaml:"experience_years"`
	About           string `yaml:"about"`
	Fees            string `yaml:"fees"`
	Available       *bool  `yaml:"available"`
}

// ParseDoctorSeed decodes the YAML doctor directory seed
func ParseDoctorSeed(r io.Reader) ([]entity.Doctor, error) {
	var file doctorSeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode doctor seed: %w", err)
	}

	doctors := make([]entity.Doctor, 0, len(file.Doctors))
	for i, seed := range file.Doctors {
		if seed.Name == "" || seed.Speciality == "" {
			return nil, fmt.Errorf("doctor seed #%d: name and speciality are required", i+1)
		}

		fees, err := decimal.NewFromString(seed.Fees)
		if err != nil {
			return nil, fmt.Errorf("doctor seed #%d (%s): invalid fees %q: %w", i+1, seed.Name, seed.Fees, err)
		}

		available := true
		if seed.Available != nil {
			available = *seed.Available
		}

		doctors = append(doctors, entity.Doctor{
			Name:            seed.Name,
			Image:           seed.Image,
			Degree:          seed.Degree,
			Speciality:      seed.Speciality,
			ExperienceYears: seed.ExperienceYears,
			About:           seed.About,
			Fees:            fees,
			Available:       &available,
		})
	}

	return doctors, nil
}

// SeedDoctors fills an empty doctors table from the YAML file. A populated table is left untouched.
func SeedDoctors(ctx context.Context, db *gorm.DB, doctorRepo repository.DoctorRepository, path string) (int, error) {
	count, err := doctorRepo.Count(db.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	if count > 0 {
		logrus.Infof("Doctor directory already has %d doctors, skipping seed", count)
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open doctor seed: %w", err)
	}
	defer f.Close()

	doctors, err := ParseDoctorSeed(f)
	if err != nil {
		return 0, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range doctors {
			if err := doctorRepo.Create(tx, &doctors[i]); err != nil {
				return fmt.Errorf("create doctor %s: %w", doctors[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.Infof("Seeded %d doctors from %s", len(doctors), path)
	return len(doctors), nil
}
