// services/auth_service.go
package services

import (
	"errors"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/config"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	code := utils.GenerateRandomToken(6)
	user := models.User{
		Email:            email,
		Password:         hashedPassword,
		FirstName:        firstName,
		LastName:         lastName,
		Verified:         false,
		VerificationCode: code,
		CodeExpiry:       time.Now().Add(24 * time.Hour),
		AccountCreated:   time.Now(),
		LoginStreak:      1,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	return utils.SendVerificationEmail(email, code)
}

func VerifyAccount(email, code string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user.Verified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return errors.New("invalid verification code")
	}
	if time.Now().After(user.CodeExpiry) {
		return errors.New("verification code expired")
	}

	user.Verified = true
	user.VerificationCode = ""
	return config.DB.Save(user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}
	if !user.Verified {
		return "", errors.New("account not verified")
	}

	return utils.GenerateJWT(user.Email)
}

func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		// Don't reveal whether the account exists.
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetCode = code
	user.CodeExpiry = time.Now().Add(time.Hour)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(email, code)
}

func ResetPassword(email, code, newPassword string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user.ResetCode == "" || user.ResetCode != code {
		return errors.New("invalid reset code")
	}
	if time.Now().After(user.CodeExpiry) {
		return errors.New("reset code expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetCode = ""
	return config.DB.Save(user).Error
}
