package dto

import (
	"time"

	"github.com/google/uuid"
)

type SlotResponse struct {
	DateTime    time.Time `json:"datetime"`
	Time        string    `json:"time"`
	DisplayTime string    `json:"display_time"`
	Available   bool      `json:"available"`
}

type DayBucketResponse struct {
	Date    string         `json:"date"` // YYYY-MM-DD
	Weekday string         `json:"weekday"`
	Day     int            `json:"day"`
	Slots   []SlotResponse `json:"slots"`
}

type DoctorSlotsResponse struct {
	DoctorID uuid.UUID           `json:"doctor_id"`
	Days     []DayBucketResponse `json:"days"`
}
