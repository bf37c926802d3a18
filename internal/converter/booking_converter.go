package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// BookingToResponse converts a persisted Booking to BookingResponse DTO
func BookingToResponse(booking *entity.Booking, currencySymbol string) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	resp := &dto.BookingResponse{
		ID:        booking.ID,
		DoctorID:  booking.DoctorID,
		SessionID: booking.SessionID,
		SlotDate:  booking.SlotDate,
		SlotTime:  booking.SlotTime,
		SlotAt:    booking.SlotAt,
		Fees:      booking.Fees.String(),
		FeeLabel:  currencySymbol + booking.Fees.String(),
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt,
	}
	if booking.Doctor.ID == booking.DoctorID {
		resp.Doctor = DoctorToResponse(&booking.Doctor, currencySymbol)
	}
	return resp
}

func BookingsToResponses(bookings []entity.Booking, currencySymbol string) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i], currencySymbol)
	}
	return responses
}
