package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/features/school/announcements/dto"
	"school_backend/internals/features/school/announcements/model"
	helper "school_backend/internals/helpers"
)

var validateAnnouncement = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// =============================
// Get All Announcements (public, newest first)
// =============================
func (ctrl *AnnouncementController) GetAll(c *fiber.Ctx) error {
	var announcements []model.AnnouncementModel
	if err := ctrl.DB.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return c.JSON(dto.ToAnnouncementDTOs(announcements))
}

// =============================
// Get Announcement By ID
// =============================
func (ctrl *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.AnnouncementModel
	if err := ctrl.DB.First(&announcement, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
	}
	return c.JSON(dto.ToAnnouncementDTO(announcement))
}

// =============================
// Create Announcement
// =============================
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var body dto.SaveAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	announcement := model.AnnouncementModel{
		Title:    body.Title,
		Content:  body.Content,
		Category: body.Category,
	}
	if err := ctrl.DB.Create(&announcement).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return c.JSON(dto.ToAnnouncementDTO(announcement))
}

// =============================
// Update Announcement
// =============================
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.SaveAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.First(&announcement, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
	}

	announcement.Title = body.Title
	announcement.Content = body.Content
	announcement.Category = body.Category

	if err := ctrl.DB.Save(&announcement).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return c.JSON(dto.ToAnnouncementDTO(announcement))
}

// =============================
// Delete Announcement
// =============================
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.AnnouncementModel
	if err := ctrl.DB.First(&announcement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up announcement")
	}

	if err := ctrl.DB.Delete(&announcement).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonSuccess(c, "Announcement deleted")
}
