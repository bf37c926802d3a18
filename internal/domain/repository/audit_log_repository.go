package repository

import (
	"mediconnect/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}

// AuditLogFilter narrows the back-office trail. ActionPrefix "doctor." matches every doctor change.
type AuditLogFilter struct {
	Actor        string
	ActionPrefix string
	Limit        int
}
