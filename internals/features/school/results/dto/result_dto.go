package dto

import (
	"school_backend/internals/features/school/results/model"
	studentDto "school_backend/internals/features/school/students/dto"
)

// ============================
// Response DTO
// ============================

type ResultDTO struct {
	ID            uint                   `json:"id"`
	StudentID     uint                   `json:"studentId"`
	Student       *studentDto.StudentDTO `json:"student,omitempty"`
	Subject       string                 `json:"subject"`
	ExamType      string                 `json:"examType"`
	MarksObtained float64                `json:"marksObtained"`
	TotalMarks    float64                `json:"totalMarks"`
	Grade         string                 `json:"grade"`
	AcademicYear  string                 `json:"academicYear"`
	Semester      string                 `json:"semester"`
	Remarks       string                 `json:"remarks"`
}

// ============================
// Request DTOs
// ============================

// SaveExamResultsRequest replaces the whole result set for
// (studentId, examType, academicYear) with the entries below.
// Results is a pointer so a payload that omits the key is rejected;
// an explicit empty list is a deliberate clear of the set.
type SaveExamResultsRequest struct {
	StudentID    uint               `json:"studentId" validate:"required"`
	ExamType     string             `json:"examType" validate:"required"`
	AcademicYear string             `json:"academicYear" validate:"required"`
	Results      *[]ExamResultEntry `json:"results" validate:"required,dive"`
}

// Marks are pointers so a missing field is distinguishable from zero.
type ExamResultEntry struct {
	Subject       string   `json:"subject" validate:"required"`
	MarksObtained *float64 `json:"marksObtained" validate:"required"`
	TotalMarks    *float64 `json:"totalMarks" validate:"required"`
	Remarks       string   `json:"remarks"`
}

type StudentRef struct {
	ID uint `json:"id" validate:"required"`
}

// CreateResultRequest adds a single row. Only the student id is honored;
// any other embedded student data is ignored and re-resolved server-side.
type CreateResultRequest struct {
	Student       *StudentRef `json:"student" validate:"required"`
	Subject       string      `json:"subject" validate:"required"`
	ExamType      string      `json:"examType" validate:"required"`
	MarksObtained *float64    `json:"marksObtained" validate:"required"`
	TotalMarks    *float64    `json:"totalMarks" validate:"required"`
	AcademicYear  string      `json:"academicYear"`
	Semester      string      `json:"semester"`
	Remarks       string      `json:"remarks"`
}

// UpdateResultRequest overwrites every mutable field; the owning student
// never changes on update.
type UpdateResultRequest struct {
	Subject       string   `json:"subject" validate:"required"`
	ExamType      string   `json:"examType" validate:"required"`
	MarksObtained *float64 `json:"marksObtained" validate:"required"`
	TotalMarks    *float64 `json:"totalMarks" validate:"required"`
	AcademicYear  string   `json:"academicYear"`
	Semester      string   `json:"semester"`
	Remarks       string   `json:"remarks"`
}

// ============================
// Converter
// ============================

func ToResultDTO(m model.ResultModel) ResultDTO {
	out := ResultDTO{
		ID:            m.ID,
		StudentID:     m.StudentID,
		Subject:       m.Subject,
		ExamType:      m.ExamType,
		MarksObtained: m.MarksObtained,
		TotalMarks:    m.TotalMarks,
		Grade:         m.Grade,
		AcademicYear:  m.AcademicYear,
		Semester:      m.Semester,
		Remarks:       m.Remarks,
	}
	if m.Student != nil {
		s := studentDto.ToStudentDTO(*m.Student)
		out.Student = &s
	}
	return out
}

func ToResultDTOs(ms []model.ResultModel) []ResultDTO {
	out := make([]ResultDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToResultDTO(m))
	}
	return out
}
