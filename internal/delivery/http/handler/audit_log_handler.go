package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"

	"github.com/gorilla/mux"
)

// AuditLogHandler serves the back-office trail of logins, doctor edits and bookings
type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// ListAuditLogs accepts ?actor=, ?action= (prefix, e.g. "booking.") and ?limit=
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := &dto.AuditLogQuery{
		Actor:  params.Get("actor"),
		Action: params.Get("action"),
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Limit must be a number")
			return
		}
		query.Limit = limit
	}

	logs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), query)
	switch {
	case errors.Is(err, usecase.ErrInvalidAuditLimit):
		response.BadRequest(w, "Limit must be between 1 and 500")
	case err != nil:
		response.InternalServerError(w, "Failed to get audit logs")
	default:
		response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	entry, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	switch {
	case errors.Is(err, usecase.ErrAuditLogNotFound):
		response.NotFound(w, "Audit log not found")
	case err != nil:
		response.InternalServerError(w, "Failed to get audit log")
	default:
		response.Success(w, http.StatusOK, "Audit log retrieved successfully", entry)
	}
}
