package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/service"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingSessionHandler struct {
	sessionUsecase usecase.BookingSessionUsecase
	validator      *validator.CustomValidator
}

func NewBookingSessionHandler(sessionUsecase usecase.BookingSessionUsecase, validator *validator.CustomValidator) *BookingSessionHandler {
	return &BookingSessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *BookingSessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req dto.StartBookingSessionRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.StartSession(r.Context(), &req)
	if err != nil {
		writeSessionError(w, err, "Failed to start booking session")
		return
	}

	response.Success(w, http.StatusCreated, "Booking session started", session)
}

func (h *BookingSessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.GetSession(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, err, "Failed to get booking session")
		return
	}

	response.Success(w, http.StatusOK, "Booking session retrieved successfully", session)
}

func (h *BookingSessionHandler) ChangeDoctor(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.ChangeDoctorRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.ChangeDoctor(r.Context(), sessionID, &req)
	if err != nil {
		writeSessionError(w, err, "Failed to change doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor changed, selection cleared", session)
}

func (h *BookingSessionHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectDayRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.SelectDay(r.Context(), sessionID, &req)
	if err != nil {
		writeSessionError(w, err, "Failed to select day")
		return
	}

	response.Success(w, http.StatusOK, "Day selected", session)
}

func (h *BookingSessionHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectSlotRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.sessionUsecase.SelectSlot(r.Context(), sessionID, &req)
	if errors.Is(err, entity.ErrSlotUnavailable) && session != nil && session.Notice != nil {
		response.Rejected(w, http.StatusConflict, session.Notice.Message, session)
		return
	}
	if err != nil {
		writeSessionError(w, err, "Failed to select slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot selected", session)
}

func (h *BookingSessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	confirmation, err := h.sessionUsecase.Submit(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, confirmation.Notice.Message, confirmation)
}

func (h *BookingSessionHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func writeSessionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		response.NotFound(w, "Booking session not found or expired")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, entity.ErrDayOutOfRange),
		errors.Is(err, entity.ErrSlotNotFound),
		errors.Is(err, entity.ErrNoSlotSelected):
		response.BadRequest(w, err.Error())
	case errors.Is(err, entity.ErrSlotUnavailable):
		response.Conflict(w, entity.MessageSlotUnavailable)
	case errors.Is(err, service.ErrSlotAlreadyBooked):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}
