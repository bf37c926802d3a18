package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingRequest is what the appointment page submits
type BookingRequest struct {
	DoctorID  uuid.UUID
	SessionID uuid.UUID
	DateKey   string
	SlotTime  string
	SlotAt    time.Time
}

// BookingConfirmation is returned by a BookingSubmitter
type BookingConfirmation struct {
	BookingID *uuid.UUID
	DateKey   string
	SlotTime  string
	Status    BookingStatus
	Message   string
}
