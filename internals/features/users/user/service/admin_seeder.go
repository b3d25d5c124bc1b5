package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"school_backend/internals/constants"
	authService "school_backend/internals/features/users/auth/service"
	userModel "school_backend/internals/features/users/user/model"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@school.com"
	defaultAdminFullName = "System Administrator"
)

// EnsureDefaultAdmin creates the bootstrap admin account when no user with
// username "admin" exists yet. Safe to run on every start.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var existing userModel.UserModel
	err := db.Where("username = ?", defaultAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authService.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		Username: defaultAdminUsername,
		Password: hash,
		Email:    defaultAdminEmail,
		FullName: defaultAdminFullName,
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[INFO] Default admin created: %s", defaultAdminUsername)
	return nil
}
