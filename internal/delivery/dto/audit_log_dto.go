package dto

import (
	"time"

	"mediconnect/internal/domain/entity"
)

// AuditLogQuery is read from ?actor=&action=&limit=
type AuditLogQuery struct {
	Actor  string
	Action string
	Limit  int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Actor     string      `json:"actor"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
	Limit int                `json:"limit"`
}
