package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school_backend/internals/features/users/auth/dto"
	"school_backend/internals/features/users/auth/service"
	userModel "school_backend/internals/features/users/user/model"
	helper "school_backend/internals/helpers"
	authMw "school_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up user")
	}

	if !service.CheckPassword(user.Password, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := service.CreateAccessToken(user.Username, user.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	})
}

// =============================
// Current user (GET /me)
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	username, _ := c.Locals(authMw.LocalsUsername).(string)

	var user userModel.UserModel
	if err := ctrl.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	return c.JSON(dto.LoginResponse{
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	})
}
