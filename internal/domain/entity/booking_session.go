package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDayOutOfRange   = errors.New("day index is out of range")
	ErrSlotNotFound    = errors.New("slot not found for the selected day")
	ErrSlotUnavailable = errors.New("doctor is not available at this time")
	ErrNoSlotSelected  = errors.New("no slot time selected")
)

// BookingSession is one patient's in-progress selection on the appointment page.
// It lives in Redis and is rewritten whole on every transition.
type BookingSession struct {
	ID        uuid.UUID   `json:"id"`
	DoctorID  uuid.UUID   `json:"doctor_id"`
	Days      []DayBucket `json:"days"`
	DayIndex  int         `json:"day_index"`
	SlotTime  string      `json:"slot_time"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewBookingSession starts a session for a doctor with a freshly generated window
func NewBookingSession(doctorID uuid.UUID, days []DayBucket, now time.Time) *BookingSession {
	s := &BookingSession{
		ID:        uuid.New(),
		CreatedAt: now,
	}
	s.SelectDoctor(doctorID, days, now)
	return s
}

// SelectDoctor replaces the doctor and its day buckets and clears the selection
func (s *BookingSession) SelectDoctor(doctorID uuid.UUID, days []DayBucket, now time.Time) {
	s.DoctorID = doctorID
	s.Days = days
	s.DayIndex = 0
	s.SlotTime = ""
	s.UpdatedAt = now
}

// SelectDay highlights another day. The chosen time label is kept.
func (s *BookingSession) SelectDay(index int, now time.Time) error {
	if index < 0 || index >= len(s.Days) {
		return ErrDayOutOfRange
	}
	s.DayIndex = index
	s.UpdatedAt = now
	return nil
}

// SelectSlot chooses a time label on the highlighted day.
// An unavailable slot leaves the selection untouched.
func (s *BookingSession) SelectSlot(label string, now time.Time) error {
	day, err := s.CurrentDay()
	if err != nil {
		return err
	}

	slot, ok := day.FindSlot(label)
	if !ok {
		return ErrSlotNotFound
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}

	s.SlotTime = slot.Time
	s.UpdatedAt = now
	return nil
}

// CurrentDay returns the highlighted day bucket
func (s *BookingSession) CurrentDay() (*DayBucket, error) {
	if s.DayIndex < 0 || s.DayIndex >= len(s.Days) || len(s.Days[s.DayIndex].Slots) == 0 {
		return nil, ErrDayOutOfRange
	}
	return &s.Days[s.DayIndex], nil
}

// CanSubmit reports whether the submit control is enabled
func (s *BookingSession) CanSubmit() bool {
	return s.SlotTime != ""
}

// BookingRequest builds the submission for the current selection
func (s *BookingSession) BookingRequest() (*BookingRequest, error) {
	if !s.CanSubmit() {
		return nil, ErrNoSlotSelected
	}

	day, err := s.CurrentDay()
	if err != nil {
		return nil, err
	}

	// The label may have been chosen on another day that offers it.
	slot, ok := day.FindSlot(s.SlotTime)
	if !ok {
		return nil, ErrSlotNotFound
	}

	return &BookingRequest{
		DoctorID:  s.DoctorID,
		SessionID: s.ID,
		DateKey:   DateKey(slot.DateTime),
		SlotTime:  slot.Time,
		SlotAt:    slot.DateTime,
	}, nil
}

// DateKey formats a date as D_M_YYYY without zero padding
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}
