package dto

import (
	"time"

	"school_backend/internals/features/school/students/model"
)

// Dates cross the wire as ISO calendar dates, e.g. "2012-04-30".
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ============================
// Response DTO
// ============================

type StudentDTO struct {
	ID            uint   `json:"id"`
	RollNumber    string `json:"rollNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ClassName     string `json:"className"`
	Section       string `json:"section"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
	AdmissionYear int    `json:"admissionYear"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateStudentRequest struct {
	RollNumber    string `json:"rollNumber" validate:"required"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	Gender        string `json:"gender"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ClassName     string `json:"className"`
	Section       string `json:"section"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
	AdmissionYear int    `json:"admissionYear"`
}

// UpdateStudentRequest overwrites every field except the roll number,
// which is immutable once assigned.
type UpdateStudentRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	Gender        string `json:"gender"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ClassName     string `json:"className"`
	Section       string `json:"section"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
	AdmissionYear int    `json:"admissionYear"`
}

// ============================
// Converter
// ============================

func ToStudentDTO(m model.StudentModel) StudentDTO {
	return StudentDTO{
		ID:            m.ID,
		RollNumber:    m.RollNumber,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth.Format(DateLayout),
		Gender:        m.Gender,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		ClassName:     m.ClassName,
		Section:       m.Section,
		GuardianName:  m.GuardianName,
		GuardianPhone: m.GuardianPhone,
		AdmissionYear: m.AdmissionYear,
	}
}

func ToStudentDTOs(ms []model.StudentModel) []StudentDTO {
	out := make([]StudentDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentDTO(m))
	}
	return out
}
