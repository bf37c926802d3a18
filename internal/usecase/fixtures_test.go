package usecase

import (
	"time"

	"mediconnect/config"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	cardiologistID = uuid.MustParse("0b6e2f1a-4a3c-4d5e-8f90-1a2b3c4d5e01")
	neurologistID  = uuid.MustParse("0b6e2f1a-4a3c-4d5e-8f90-1a2b3c4d5e02")
	secondCardioID = uuid.MustParse("0b6e2f1a-4a3c-4d5e-8f90-1a2b3c4d5e03")
)

var storageDisabled = config.CloudinaryConfig{}

// fixedNow is Thursday 5 March 2026, 09:00 UTC
func fixedNow() time.Time {
	return time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func newTestDirectory() service.DoctorDirectory {
	directory := service.NewDoctorDirectory(nil, newTestLogger(), nil, "$")
	directory.Replace([]entity.Doctor{
		{ID: cardiologistID, Name: "Dr. Emily Larson", Degree: "MBBS", Speciality: "Cardiologist", ExperienceYears: 3, Fees: decimal.NewFromInt(60)},
		{ID: neurologistID, Name: "Dr. Sarah Patel", Degree: "MBBS", Speciality: "Neurologist", ExperienceYears: 1, Fees: decimal.NewFromInt(30)},
		{ID: secondCardioID, Name: "Dr. Andrew Williams", Degree: "MBBS", Speciality: "Cardiologist", ExperienceYears: 4, Fees: decimal.NewFromInt(50)},
	})
	return directory
}

func newTestGenerator() *service.SlotGenerator {
	return service.NewSlotGenerator([]string{"12:00 PM", "03:30 PM", "05:00 PM"}, time.UTC)
}
