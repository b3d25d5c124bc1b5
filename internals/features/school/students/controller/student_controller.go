package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/features/school/students/dto"
	"school_backend/internals/features/school/students/model"
	helper "school_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =============================
// Get All Students
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ctrl.DB.Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve students")
	}
	return c.JSON(dto.ToStudentDTOs(students))
}

// =============================
// Get Student By ID
// =============================
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	return c.JSON(dto.ToStudentDTO(student))
}

// =============================
// Get Student By Roll Number
// =============================
func (ctrl *StudentController) GetByRollNumber(c *fiber.Ctx) error {
	roll := c.Params("rollNumber")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "roll_number = ?", roll).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	return c.JSON(dto.ToStudentDTO(student))
}

// =============================
// Get Students By Class
// =============================
func (ctrl *StudentController) GetByClass(c *fiber.Ctx) error {
	className := c.Params("className")

	var students []model.StudentModel
	if err := ctrl.DB.Find(&students, "class_name = ?", className).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve students")
	}
	return c.JSON(dto.ToStudentDTOs(students))
}

// =============================
// Create Student
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dob, err := dto.ParseDate(body.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dateOfBirth, expected YYYY-MM-DD")
	}

	// natural-key check before any write
	var count int64
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("roll_number = ?", body.RollNumber).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check roll number")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Roll number already exists")
	}

	student := model.StudentModel{
		RollNumber:    body.RollNumber,
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		DateOfBirth:   dob,
		Gender:        body.Gender,
		Email:         body.Email,
		Phone:         body.Phone,
		Address:       body.Address,
		ClassName:     body.ClassName,
		Section:       body.Section,
		GuardianName:  body.GuardianName,
		GuardianPhone: body.GuardianPhone,
		AdmissionYear: body.AdmissionYear,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return c.JSON(dto.ToStudentDTO(student))
}

// =============================
// Update Student
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dob, err := dto.ParseDate(body.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid dateOfBirth, expected YYYY-MM-DD")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	student.FirstName = body.FirstName
	student.LastName = body.LastName
	student.DateOfBirth = dob
	student.Gender = body.Gender
	student.Email = body.Email
	student.Phone = body.Phone
	student.Address = body.Address
	student.ClassName = body.ClassName
	student.Section = body.Section
	student.GuardianName = body.GuardianName
	student.GuardianPhone = body.GuardianPhone
	student.AdmissionYear = body.AdmissionYear

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return c.JSON(dto.ToStudentDTO(student))
}

// =============================
// Delete Student
// =============================
// Results referencing the student are left in place; there is no cascade.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up student")
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonSuccess(c, "Student deleted successfully")
}
