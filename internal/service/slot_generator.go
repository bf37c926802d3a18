package service

import (
	"time"

	"mediconnect/internal/domain/entity"
)

const (
	SlotWindowDays  = 7
	SlotOpeningHour = 10
	SlotClosingHour = 21
	SlotStep        = 30 * time.Minute
)

// SlotGenerator builds the 7-day window of half-hour slots shown on the appointment page
type SlotGenerator struct {
	unavailable entity.UnavailableList
	loc         *time.Location
}

func NewSlotGenerator(unavailable []string, loc *time.Location) *SlotGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &SlotGenerator{
		unavailable: entity.UnavailableList(unavailable),
		loc:         loc,
	}
}

// Generate returns day buckets for today through six days ahead.
// Days without any slot are omitted, so the result can be shorter than SlotWindowDays.
func (g *SlotGenerator) Generate(now time.Time) []entity.DayBucket {
	now = now.In(g.loc)
	year, month, day := now.Date()

	days := make([]entity.DayBucket, 0, SlotWindowDays)
	for i := 0; i < SlotWindowDays; i++ {
		end := time.Date(year, month, day+i, SlotClosingHour, 0, 0, 0, g.loc)

		var slots []entity.Slot
		for t := g.windowStart(now, i); t.Before(end); t = t.Add(SlotStep) {
			label := t.Format(entity.SlotLabelLayout)
			slots = append(slots, entity.Slot{
				DateTime:  t,
				Time:      label,
				Available: !g.unavailable.Contains(label),
			})
		}

		if len(slots) == 0 {
			continue
		}

		days = append(days, entity.DayBucket{
			Date:  time.Date(year, month, day+i, 0, 0, 0, 0, g.loc),
			Slots: slots,
		})
	}

	return days
}

// windowStart is 10:00 except for a today already past 10 o'clock, which starts
// at the next hour (half past when the current minute is past 30).
// Hour 24 rolls into tomorrow and leaves today empty.
func (g *SlotGenerator) windowStart(now time.Time, offset int) time.Time {
	year, month, day := now.Date()
	if offset > 0 || now.Hour() <= SlotOpeningHour {
		return time.Date(year, month, day+offset, SlotOpeningHour, 0, 0, 0, g.loc)
	}

	minute := 0
	if now.Minute() > 30 {
		minute = 30
	}
	return time.Date(year, month, day, now.Hour()+1, minute, 0, 0, g.loc)
}
