package model

import (
	studentModel "school_backend/internals/features/school/students/model"
)

// ResultModel rows are grouped into replaceable sets by
// (student_id, exam_type, academic_year): saving a set for that key
// supersedes everything previously stored under it.
type ResultModel struct {
	ID        uint `gorm:"column:id;primaryKey" json:"id"`
	StudentID uint `gorm:"column:student_id;not null;index" json:"studentId"`
	// association only, no DB constraint; deleting a student leaves
	// its result rows behind
	Student       *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Subject       string                     `gorm:"column:subject;type:varchar(100);not null" json:"subject"`
	ExamType      string                     `gorm:"column:exam_type;type:varchar(50);not null" json:"examType"`
	MarksObtained float64                    `gorm:"column:marks_obtained;not null" json:"marksObtained"`
	TotalMarks    float64                    `gorm:"column:total_marks;not null" json:"totalMarks"`
	Grade         string                     `gorm:"column:grade;type:varchar(5)" json:"grade"`
	AcademicYear  string                     `gorm:"column:academic_year;type:varchar(20)" json:"academicYear"`
	Semester      string                     `gorm:"column:semester;type:varchar(20)" json:"semester"`
	Remarks       string                     `gorm:"column:remarks;type:text" json:"remarks"`
}

func (ResultModel) TableName() string {
	return "results"
}
