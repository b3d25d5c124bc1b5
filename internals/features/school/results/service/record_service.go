package service

import (
	"errors"

	"gorm.io/gorm"

	"school_backend/internals/features/school/results/dto"
	"school_backend/internals/features/school/results/model"
	studentModel "school_backend/internals/features/school/students/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrMissingResults  = errors.New("results list missing")
)

// RecordExamResults replaces the result set for
// (studentId, examType, academicYear) with the submitted entries, all
// inside one transaction: resolve student, delete the old set, insert
// the new rows with computed grades. Any failure rolls everything back.
// A nil Results list is refused outright; clearing a set takes an
// explicit empty list.
func RecordExamResults(db *gorm.DB, req dto.SaveExamResultsRequest) ([]model.ResultModel, error) {
	if req.Results == nil {
		return nil, ErrMissingResults
	}

	var saved []model.ResultModel

	err := db.Transaction(func(tx *gorm.DB) error {
		saved = saved[:0]

		var student studentModel.StudentModel
		if err := tx.First(&student, "id = ?", req.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		// old set must be gone before the new rows are written
		if err := tx.
			Where("student_id = ? AND exam_type = ? AND academic_year = ?",
				req.StudentID, req.ExamType, req.AcademicYear).
			Delete(&model.ResultModel{}).Error; err != nil {
			return err
		}

		for _, entry := range *req.Results {
			row := model.ResultModel{
				StudentID:     student.ID,
				Subject:       entry.Subject,
				ExamType:      req.ExamType,
				MarksObtained: *entry.MarksObtained,
				TotalMarks:    *entry.TotalMarks,
				AcademicYear:  req.AcademicYear,
				Remarks:       entry.Remarks,
			}
			row.Grade = CalculateGrade(row.MarksObtained / row.TotalMarks * 100)

			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			saved = append(saved, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
