package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/features/school/teachers/dto"
	"school_backend/internals/features/school/teachers/model"
	helper "school_backend/internals/helpers"
)

var validateTeacher = validator.New()

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// =============================
// Get All Teachers (public)
// =============================
func (ctrl *TeacherController) GetAllTeachers(c *fiber.Ctx) error {
	var teachers []model.TeacherModel
	if err := ctrl.DB.Order("name ASC").Find(&teachers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve teachers")
	}
	return c.JSON(dto.ToTeacherDTOs(teachers))
}

// =============================
// Add Teacher
// =============================
func (ctrl *TeacherController) AddTeacher(c *fiber.Ctx) error {
	var body dto.SaveTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacher := model.TeacherModel{
		Name:          body.Name,
		Designation:   body.Designation,
		Subject:       body.Subject,
		Qualification: body.Qualification,
		Phone:         body.Phone,
		Email:         body.Email,
		PhotoURL:      body.PhotoURL,
		Section:       body.Section,
		JoiningYear:   body.JoiningYear,
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return c.JSON(dto.ToTeacherDTO(teacher))
}

// =============================
// Update Teacher
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.SaveTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	teacher.Name = body.Name
	teacher.Designation = body.Designation
	teacher.Subject = body.Subject
	teacher.Qualification = body.Qualification
	teacher.Phone = body.Phone
	teacher.Email = body.Email
	teacher.PhotoURL = body.PhotoURL
	teacher.Section = body.Section
	teacher.JoiningYear = body.JoiningYear

	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return c.JSON(dto.ToTeacherDTO(teacher))
}

// =============================
// Delete Teacher
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id := c.Params("id")

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up teacher")
	}

	if err := ctrl.DB.Delete(&teacher).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonSuccess(c, "Teacher deleted")
}
