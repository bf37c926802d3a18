package usecase

import (
	"context"
	"testing"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDoctorUsecase() DoctorUsecase {
	uploader, _ := storage.NewImageUploader(storageDisabled)
	return NewDoctorUsecase(nil, newTestLogger(), nil, new(MockAuditService), newTestDirectory(), newTestGenerator(), uploader, fixedNow)
}

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	u := newTestDoctorUsecase()

	all, err := u.ListDoctors(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, "$", all.CurrencySymbol)

	cardio, err := u.ListDoctors(context.Background(), "cardiologist")
	require.NoError(t, err)
	assert.Equal(t, 2, cardio.Total)
	for _, doctor := range cardio.Doctors {
		assert.Equal(t, "Cardiologist", doctor.Speciality)
	}
}

func TestDoctorUsecase_GetDoctor(t *testing.T) {
	u := newTestDoctorUsecase()

	doctor, err := u.GetDoctor(context.Background(), neurologistID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Patel", doctor.Name)
	assert.Equal(t, "1 Years", doctor.Experience)
	assert.Equal(t, "$30", doctor.FeeLabel)
	assert.True(t, doctor.Available)

	_, err = u.GetDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_GetRelatedDoctors(t *testing.T) {
	u := newTestDoctorUsecase()

	related, err := u.GetRelatedDoctors(context.Background(), cardiologistID)
	require.NoError(t, err)
	require.Equal(t, 1, related.Total)
	assert.Equal(t, secondCardioID, related.Doctors[0].ID)

	related, err = u.GetRelatedDoctors(context.Background(), neurologistID)
	require.NoError(t, err)
	assert.Equal(t, 0, related.Total)
	assert.NotNil(t, related.Doctors)

	_, err = u.GetRelatedDoctors(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_GetDoctorSlots(t *testing.T) {
	u := newTestDoctorUsecase()

	slots, err := u.GetDoctorSlots(context.Background(), cardiologistID)
	require.NoError(t, err)
	require.Len(t, slots.Days, 7)

	first := slots.Days[0]
	assert.Equal(t, "2026-03-05", first.Date)
	assert.Equal(t, "THU", first.Weekday)
	assert.Equal(t, 5, first.Day)
	require.Len(t, first.Slots, 22)
	assert.Equal(t, "10:00 AM", first.Slots[0].Time)
	assert.Equal(t, "10:00 am", first.Slots[0].DisplayTime)
	assert.Equal(t, "08:30 PM", first.Slots[21].Time)

	for _, slot := range first.Slots {
		switch slot.Time {
		case "12:00 PM", "03:30 PM", "05:00 PM":
			assert.False(t, slot.Available, slot.Time)
		default:
			assert.True(t, slot.Available, slot.Time)
		}
	}

	_, err = u.GetDoctorSlots(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_CreateDoctor_InvalidFees(t *testing.T) {
	u := newTestDoctorUsecase()

	_, err := u.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:       "Dr. Jennifer Garcia",
		Degree:     "MBBS",
		Speciality: "Neurologist",
		Fees:       "-10",
	})
	assert.ErrorIs(t, err, ErrInvalidFees)
}

func TestParseFees(t *testing.T) {
	fees, err := parseFees("49.50")
	require.NoError(t, err)
	assert.Equal(t, "49.5", fees.String())

	_, err = parseFees("abc")
	assert.ErrorIs(t, err, ErrInvalidFees)
}
