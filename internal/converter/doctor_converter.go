package converter

import (
	"fmt"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor, currencySymbol string) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Image:           doctor.Image,
		Degree:          doctor.Degree,
		Speciality:      doctor.Speciality,
		Experience:      ExperienceLabel(doctor.ExperienceYears),
		ExperienceYears: doctor.ExperienceYears,
		About:           doctor.About,
		Fees:            doctor.Fees.String(),
		FeeLabel:        currencySymbol + doctor.Fees.String(),
		Available:       doctor.IsAvailable(),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor, currencySymbol string) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], currencySymbol)
	}
	return responses
}

// ExperienceLabel renders years of experience as shown on the doctor card
func ExperienceLabel(years int) string {
	return fmt.Sprintf("%d Years", years)
}
