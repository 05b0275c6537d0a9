package services

import (
	"errors"
	"log"

	"github.com/Pragathi1123/eco-hive-smart/config"
	"github.com/Pragathi1123/eco-hive-smart/models"
	"github.com/Pragathi1123/eco-hive-smart/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// RegisterUser creates the account and its stats row together. Every user
// must have a user_stats row from day one; the achievement evaluator treats
// a missing row as a data-integrity failure, not an empty start.
func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserStats{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	// Best-effort; never block registration on mail delivery.
	if err := utils.SendWelcomeEmail(email, fullName); err != nil {
		log.Printf("welcome email to %s failed: %v", email, err)
	}

	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
