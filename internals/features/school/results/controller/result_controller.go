package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/features/school/results/dto"
	"school_backend/internals/features/school/results/model"
	"school_backend/internals/features/school/results/service"
	studentDto "school_backend/internals/features/school/students/dto"
	studentModel "school_backend/internals/features/school/students/model"
	helper "school_backend/internals/helpers"
)

var validateResult = validator.New()

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// =============================
// Public lookup by roll number + date of birth
// =============================
func (ctrl *ResultController) Lookup(c *fiber.Ctx) error {
	rollNumber := c.Query("rollNumber")
	dobStr := c.Query("dob")

	dob, err := studentDto.ParseDate(dobStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "roll_number = ? AND date_of_birth = ?", rollNumber, dob).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "No student matches that roll number and date of birth")
	}

	var results []model.ResultModel
	if err := ctrl.DB.Find(&results, "student_id = ?", student.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve results")
	}

	return c.JSON(fiber.Map{
		"student": studentDto.ToStudentDTO(student),
		"results": dto.ToResultDTOs(results),
	})
}

// =============================
// Get Results By Student
// =============================
func (ctrl *ResultController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var results []model.ResultModel
	if err := ctrl.DB.Preload("Student").
		Find(&results, "student_id = ?", studentID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve results")
	}
	return c.JSON(dto.ToResultDTOs(results))
}

// =============================
// Get All Results (admin)
// =============================
func (ctrl *ResultController) GetAll(c *fiber.Ctx) error {
	var results []model.ResultModel
	if err := ctrl.DB.Preload("Student").Find(&results).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve results")
	}
	return c.JSON(dto.ToResultDTOs(results))
}

// =============================
// Save a student's exam result set (replaces the previous set)
// =============================
func (ctrl *ResultController) SaveExamResults(c *fiber.Ctx) error {
	var body dto.SaveExamResultsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResult.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved, err := service.RecordExamResults(ctrl.DB, body)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student not found")
		}
		// persistence failures surface as a client-visible 400 too;
		// nothing was committed
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to save results: "+err.Error())
	}
	return c.JSON(dto.ToResultDTOs(saved))
}

// =============================
// Add a single Result
// =============================
func (ctrl *ResultController) AddResult(c *fiber.Ctx) error {
	var body dto.CreateResultRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Student == nil || body.Student.ID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}
	if err := validateResult.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", body.Student.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student not found")
	}

	result := model.ResultModel{
		StudentID:     student.ID,
		Subject:       body.Subject,
		ExamType:      body.ExamType,
		MarksObtained: *body.MarksObtained,
		TotalMarks:    *body.TotalMarks,
		AcademicYear:  body.AcademicYear,
		Semester:      body.Semester,
		Remarks:       body.Remarks,
	}
	result.Grade = service.CalculateGrade(result.MarksObtained / result.TotalMarks * 100)

	if err := ctrl.DB.Create(&result).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create result")
	}
	return c.JSON(dto.ToResultDTO(result))
}

// =============================
// Update Result
// =============================
func (ctrl *ResultController) UpdateResult(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateResultRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResult.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var result model.ResultModel
	if err := ctrl.DB.First(&result, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Result not found")
	}

	result.Subject = body.Subject
	result.ExamType = body.ExamType
	result.MarksObtained = *body.MarksObtained
	result.TotalMarks = *body.TotalMarks
	result.AcademicYear = body.AcademicYear
	result.Semester = body.Semester
	result.Remarks = body.Remarks
	result.Grade = service.CalculateGrade(result.MarksObtained / result.TotalMarks * 100)

	if err := ctrl.DB.Save(&result).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update result")
	}
	return c.JSON(dto.ToResultDTO(result))
}

// =============================
// Delete Result
// =============================
func (ctrl *ResultController) DeleteResult(c *fiber.Ctx) error {
	id := c.Params("id")

	var result model.ResultModel
	if err := ctrl.DB.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up result")
	}

	if err := ctrl.DB.Delete(&result).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete result")
	}
	return helper.JsonSuccess(c, "Result deleted successfully")
}
