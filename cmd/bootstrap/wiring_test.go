package bootstrap

import (
	"context"
	"testing"
	"time"

	"mediconnect/config"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingSubmitter_Acknowledge(t *testing.T) {
	log, _ := test.NewNullLogger()

	for _, mode := range []string{config.BookingModeAcknowledge, "bogus"} {
		submitter := newBookingSubmitter(mode, nil, log, nil, nil, nil)

		confirmation, err := submitter.Submit(context.Background(), &entity.BookingRequest{
			DoctorID:  uuid.New(),
			SessionID: uuid.New(),
			DateKey:   "5_3_2026",
			SlotTime:  "11:00 AM",
		})
		require.NoError(t, err, mode)
		assert.Equal(t, entity.BookingStatusAcknowledged, confirmation.Status)
		assert.Equal(t, "Your appointment is booked", confirmation.Message)
	}
}

func TestNewDirectoryRefresher(t *testing.T) {
	log, _ := test.NewNullLogger()
	directory := service.NewDoctorDirectory(nil, log, nil, "$")

	c, err := newDirectoryRefresher(log, time.UTC, "", directory)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = newDirectoryRefresher(log, time.UTC, "*/10 * * * *", directory)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)

	_, err = newDirectoryRefresher(log, time.UTC, "every tuesday", directory)
	assert.Error(t, err)
}
