package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediconnect/config"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingSessionUsecase struct {
	mock.Mock
}

func (m *MockBookingSessionUsecase) StartSession(ctx context.Context, req *dto.StartBookingSessionRequest) (*dto.BookingSessionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.BookingSessionResponse)
	return resp, args.Error(1)
}

func (m *MockBookingSessionUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.BookingSessionResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*dto.BookingSessionResponse)
	return resp, args.Error(1)
}

func (m *MockBookingSessionUsecase) ChangeDoctor(ctx context.Context, sessionID uuid.UUID, req *dto.ChangeDoctorRequest) (*dto.BookingSessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*dto.BookingSessionResponse)
	return resp, args.Error(1)
}

func (m *MockBookingSessionUsecase) SelectDay(ctx context.Context, sessionID uuid.UUID, req *dto.SelectDayRequest) (*dto.BookingSessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*dto.BookingSessionResponse)
	return resp, args.Error(1)
}

func (m *MockBookingSessionUsecase) SelectSlot(ctx context.Context, sessionID uuid.UUID, req *dto.SelectSlotRequest) (*dto.BookingSessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*dto.BookingSessionResponse)
	return resp, args.Error(1)
}

func (m *MockBookingSessionUsecase) Submit(ctx context.Context, sessionID uuid.UUID) (*dto.BookingConfirmationResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*dto.BookingConfirmationResponse)
	return resp, args.Error(1)
}

func newSessionRouter(uc usecase.BookingSessionUsecase) *mux.Router {
	h := NewBookingSessionHandler(uc, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/booking-sessions", h.StartSession).Methods(http.MethodPost)
	r.HandleFunc("/booking-sessions/{id}", h.GetSession).Methods(http.MethodGet)
	r.HandleFunc("/booking-sessions/{id}/day", h.SelectDay).Methods(http.MethodPut)
	r.HandleFunc("/booking-sessions/{id}/slot", h.SelectSlot).Methods(http.MethodPut)
	r.HandleFunc("/booking-sessions/{id}/submit", h.Submit).Methods(http.MethodPost)
	return r
}

func serve(r http.Handler, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var envelope response.Response
	json.Unmarshal(rec.Body.Bytes(), &envelope)
	return rec, envelope
}

func TestBookingSessionHandler_StartSession_Validation(t *testing.T) {
	uc := new(MockBookingSessionUsecase)

	rec, envelope := serve(newSessionRouter(uc), http.MethodPost, "/booking-sessions", `{"doctor_id":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", envelope.Message)
	uc.AssertNotCalled(t, "StartSession", mock.Anything, mock.Anything)
}

func TestBookingSessionHandler_StartSession_UnknownDoctor(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	uc.On("StartSession", mock.Anything, mock.Anything).Return(nil, usecase.ErrDoctorNotFound)

	rec, _ := serve(newSessionRouter(uc), http.MethodPost, "/booking-sessions", `{"doctor_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingSessionHandler_GetSession_Expired(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	id := uuid.New()
	uc.On("GetSession", mock.Anything, id).Return(nil, usecase.ErrSessionNotFound)

	rec, _ := serve(newSessionRouter(uc), http.MethodGet, "/booking-sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingSessionHandler_SelectDay_OutOfRange(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	id := uuid.New()
	uc.On("SelectDay", mock.Anything, id, mock.Anything).Return(nil, entity.ErrDayOutOfRange)

	rec, _ := serve(newSessionRouter(uc), http.MethodPut, "/booking-sessions/"+id.String()+"/day", `{"day_index":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingSessionHandler_SelectSlot_Unavailable(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	id := uuid.New()
	uc.On("SelectSlot", mock.Anything, id, &dto.SelectSlotRequest{Time: "12:00 PM"}).Return(&dto.BookingSessionResponse{
		ID:       id,
		SlotTime: "",
		Notice:   &dto.NoticeResponse{Kind: "slot_unavailable", Message: "Doctor is not available at this time"},
	}, entity.ErrSlotUnavailable)

	rec, envelope := serve(newSessionRouter(uc), http.MethodPut, "/booking-sessions/"+id.String()+"/slot", `{"time":"12:00 PM"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Doctor is not available at this time", envelope.Message)
	require.NotNil(t, envelope.Data)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "", data["slot_time"])
	assert.Equal(t, false, data["can_submit"])
}

func TestBookingSessionHandler_Submit_NoSlot(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	id := uuid.New()
	uc.On("Submit", mock.Anything, id).Return(nil, entity.ErrNoSlotSelected)

	rec, _ := serve(newSessionRouter(uc), http.MethodPost, "/booking-sessions/"+id.String()+"/submit", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingSessionHandler_Submit(t *testing.T) {
	uc := new(MockBookingSessionUsecase)
	id := uuid.New()
	uc.On("Submit", mock.Anything, id).Return(&dto.BookingConfirmationResponse{
		SlotDate: "5_3_2026",
		SlotTime: "11:00 AM",
		Status:   "acknowledged",
		Notice:   &dto.NoticeResponse{Kind: "booking_confirmed", Message: "Your appointment is booked"},
	}, nil)

	rec, envelope := serve(newSessionRouter(uc), http.MethodPost, "/booking-sessions/"+id.String()+"/submit", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Your appointment is booked", envelope.Message)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "5_3_2026", data["slot_date"])
}

func TestBookingSessionHandler_InvalidSessionID(t *testing.T) {
	uc := new(MockBookingSessionUsecase)

	rec, _ := serve(newSessionRouter(uc), http.MethodGet, "/booking-sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSiteHandler_GetSite(t *testing.T) {
	h := NewSiteHandler(config.SiteConfig{
		Name:  "MediConnect",
		Links: []string{"Home", "About us"},
		Phone: "+1-212-456-7890",
		Email: "mediconnect@gmail.com",
	})

	rec := httptest.NewRecorder()
	h.GetSite(rec, httptest.NewRequest(http.MethodGet, "/site", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data dto.SiteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "MediConnect", envelope.Data.Name)
	assert.Equal(t, "+1-212-456-7890", envelope.Data.Contact.Phone)
}
