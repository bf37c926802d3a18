package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type StartBookingSessionRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}

type ChangeDoctorRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
}

type SelectDayRequest struct {
	DayIndex *int `json:"day_index" validate:"required,min=0"`
}

type SelectSlotRequest struct {
	Time string `json:"time" validate:"required"`
}

// Response DTOs

type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type BookingSessionResponse struct {
	ID        uuid.UUID           `json:"id"`
	DoctorID  uuid.UUID           `json:"doctor_id"`
	Doctor    *DoctorResponse     `json:"doctor,omitempty"`
	Days      []DayBucketResponse `json:"days"`
	DayIndex  int                 `json:"day_index"`
	SlotTime  string              `json:"slot_time"`
	CanSubmit bool                `json:"can_submit"`
	Notice    *NoticeResponse     `json:"notice,omitempty"`
}

type BookingConfirmationResponse struct {
	BookingID *uuid.UUID      `json:"booking_id,omitempty"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	SlotDate  string          `json:"slot_date"`
	SlotTime  string          `json:"slot_time"`
	Status    string          `json:"status"`
	Notice    *NoticeResponse `json:"notice,omitempty"`
}
