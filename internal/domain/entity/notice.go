package entity

type NoticeKind string

const (
	NoticeBookingConfirmed NoticeKind = "booking_confirmed"
	NoticeSlotUnavailable  NoticeKind = "slot_unavailable"
)

const (
	MessageBookingConfirmed = "Your appointment is booked"
	MessageSlotUnavailable  = "Doctor is not available at this time"
)

// Notice is a user-visible notification
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
