package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is a directory record shown on the listing and appointment pages
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Image           string          `gorm:"type:text" json:"image"`
	Degree          string          `gorm:"type:varchar(50);not null" json:"degree"`
	Speciality      string          `gorm:"type:varchar(100);not null;index" json:"speciality"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	About           string          `gorm:"type:text" json:"about"`
	Fees            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fees"`
	Available       *bool           `gorm:"not null;default:true" json:"available"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsAvailable treats a missing flag as available, matching the column default
func (d *Doctor) IsAvailable() bool {
	return d.Available == nil || *d.Available
}
