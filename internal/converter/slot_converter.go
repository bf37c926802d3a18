package converter

import (
	"strings"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

var weekdayLabels = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// SlotToResponse converts a Slot to SlotResponse DTO
func SlotToResponse(slot entity.Slot) dto.SlotResponse {
	return dto.SlotResponse{
		DateTime:    slot.DateTime,
		Time:        slot.Time,
		DisplayTime: strings.ToLower(slot.Time),
		Available:   slot.Available,
	}
}

// DayBucketToResponse converts a DayBucket to DayBucketResponse DTO
func DayBucketToResponse(day entity.DayBucket) dto.DayBucketResponse {
	slots := make([]dto.SlotResponse, len(day.Slots))
	for i, slot := range day.Slots {
		slots[i] = SlotToResponse(slot)
	}

	return dto.DayBucketResponse{
		Date:    day.Date.Format("2006-01-02"),
		Weekday: weekdayLabels[day.Date.Weekday()],
		Day:     day.Date.Day(),
		Slots:   slots,
	}
}

// DayBucketsToResponses converts day buckets to DayBucketResponse DTOs
func DayBucketsToResponses(days []entity.DayBucket) []dto.DayBucketResponse {
	responses := make([]dto.DayBucketResponse, len(days))
	for i, day := range days {
		responses[i] = DayBucketToResponse(day)
	}
	return responses
}
