package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/infrastructure/storage"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxImageSize bounds a doctor portrait upload
const maxImageSize = 5 << 20

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), r.URL.Query().Get("speciality"))
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeReadError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetRelatedDoctors(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	doctors, err := h.doctorUsecase.GetRelatedDoctors(r.Context(), doctorID)
	if err != nil {
		h.writeReadError(w, err, "Failed to get related doctors")
		return
	}

	response.Success(w, http.StatusOK, "Related doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	slots, err := h.doctorUsecase.GetDoctorSlots(r.Context(), doctorID)
	if err != nil {
		h.writeReadError(w, err, "Failed to get doctor slots")
		return
	}

	response.Success(w, http.StatusOK, "Doctor slots retrieved successfully", slots)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFees):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidFees):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		h.writeReadError(w, err, "Failed to delete doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// UploadDoctorImage accepts a multipart form with the portrait in the "image" field
func (h *DoctorHandler) UploadDoctorImage(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseDoctorID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	doctor, err := h.doctorUsecase.UploadDoctorImage(r.Context(), doctorID, file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, storage.ErrUploadsDisabled):
			response.Error(w, http.StatusServiceUnavailable, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload doctor image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor image uploaded successfully", doctor)
}

func (h *DoctorHandler) writeReadError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrDoctorNotFound) {
		response.NotFound(w, "Doctor not found")
		return
	}
	response.InternalServerError(w, fallback)
}

func parseDoctorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return uuid.Nil, false
	}
	return doctorID, true
}
