package entity

import "time"

// SlotLabelLayout renders a slot the way the booking page shows it, e.g. "02:30 PM"
const SlotLabelLayout = "03:04 PM"

// Slot is a single half-hour unit of a day bucket
type Slot struct {
	DateTime  time.Time `json:"datetime"`
	Time      string    `json:"time"`
	Available bool      `json:"available"`
}

// DayBucket is one calendar day's ordered list of slots
type DayBucket struct {
	Date  time.Time `json:"date"`
	Slots []Slot    `json:"slots"`
}

// FindSlot returns the slot with the given label
func (d *DayBucket) FindSlot(label string) (*Slot, bool) {
	for i := range d.Slots {
		if d.Slots[i].Time == label {
			return &d.Slots[i], true
		}
	}
	return nil, false
}

// UnavailableList is the fixed set of labels treated as already booked
type UnavailableList []string

func (l UnavailableList) Contains(label string) bool {
	for _, blocked := range l {
		if blocked == label {
			return true
		}
	}
	return false
}
