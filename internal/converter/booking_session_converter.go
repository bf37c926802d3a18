package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// BookingSessionToResponse converts a BookingSession to BookingSessionResponse DTO.
// doctor may be nil when the directory no longer lists it.
func BookingSessionToResponse(session *entity.BookingSession, doctor *entity.Doctor, currencySymbol string) *dto.BookingSessionResponse {
	if session == nil {
		return nil
	}

	return &dto.BookingSessionResponse{
		ID:        session.ID,
		DoctorID:  session.DoctorID,
		Doctor:    DoctorToResponse(doctor, currencySymbol),
		Days:      DayBucketsToResponses(session.Days),
		DayIndex:  session.DayIndex,
		SlotTime:  session.SlotTime,
		CanSubmit: session.CanSubmit(),
	}
}

// NoticeToResponse converts a Notice to NoticeResponse DTO
func NoticeToResponse(notice entity.Notice) *dto.NoticeResponse {
	return &dto.NoticeResponse{
		Kind:    string(notice.Kind),
		Message: notice.Message,
	}
}

// BookingConfirmationToResponse converts a BookingConfirmation to BookingConfirmationResponse DTO
func BookingConfirmationToResponse(req *entity.BookingRequest, confirmation *entity.BookingConfirmation) *dto.BookingConfirmationResponse {
	if confirmation == nil {
		return nil
	}

	return &dto.BookingConfirmationResponse{
		BookingID: confirmation.BookingID,
		DoctorID:  req.DoctorID,
		SlotDate:  confirmation.DateKey,
		SlotTime:  confirmation.SlotTime,
		Status:    string(confirmation.Status),
		Notice: NoticeToResponse(entity.Notice{
			Kind:    entity.NoticeBookingConfirmed,
			Message: confirmation.Message,
		}),
	}
}
