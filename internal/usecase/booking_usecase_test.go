package usecase

import (
	"context"
	"testing"

	"mediconnect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBookingUsecase_GetAllBookings_RejectsUnknownStatus(t *testing.T) {
	u := NewBookingUsecase(nil, newTestLogger(), nil, new(MockAuditService), "$")

	resp, err := u.GetAllBookings(context.Background(), nil, "rescheduled")
	assert.ErrorIs(t, err, ErrInvalidBookingStatus)
	assert.Nil(t, resp)
}

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    entity.BookingStatus
		wantErr bool
	}{
		{raw: "confirmed", want: entity.BookingStatusConfirmed},
		{raw: "cancelled", want: entity.BookingStatusCancelled},
		{raw: "acknowledged", want: entity.BookingStatusAcknowledged},
		{raw: "Confirmed", wantErr: true},
		{raw: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseBookingStatus(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBookingStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
