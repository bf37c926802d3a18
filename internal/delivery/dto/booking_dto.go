package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	Doctor    *DoctorResponse `json:"doctor,omitempty"`
	SessionID uuid.UUID       `json:"session_id"`
	SlotDate  string          `json:"slot_date"`
	SlotTime  string          `json:"slot_time"`
	SlotAt    time.Time       `json:"slot_at"`
	Fees      string          `json:"fees"`
	FeeLabel  string          `json:"fee_label"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
