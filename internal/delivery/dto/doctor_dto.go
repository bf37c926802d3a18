package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Image           string `json:"image" validate:"omitempty,url"`
	Degree          string `json:"degree" validate:"required"`
	Speciality      string `json:"speciality" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"min=0,max=80"`
	About           string `json:"about" validate:"omitempty"`
	Fees            string `json:"fees" validate:"required,numeric"`
	Available       *bool  `json:"available" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2"`
	Image           string `json:"image" validate:"omitempty,url"`
	Degree          string `json:"degree" validate:"omitempty"`
	Speciality      string `json:"speciality" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,min=0,max=80"`
	About           string `json:"about" validate:"omitempty"`
	Fees            string `json:"fees" validate:"omitempty,numeric"`
	Available       *bool  `json:"available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	Degree          string    `json:"degree"`
	Speciality      string    `json:"speciality"`
	Experience      string    `json:"experience"`
	ExperienceYears int       `json:"experience_years"`
	About           string    `json:"about"`
	Fees            string    `json:"fees"`
	FeeLabel        string    `json:"fee_label"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors        []DoctorResponse `json:"doctors"`
	Total          int              `json:"total"`
	CurrencySymbol string           `json:"currency_symbol"`
}
