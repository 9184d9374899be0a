package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	db        *gorm.DB
	mailer    *utils.Mailer // nil disables reset emails
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, mailer *utils.Mailer, jwtSecret []byte) *AuthService {
	return &AuthService{db: db, mailer: mailer, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(email, password, firstName, lastName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	base := strings.ToLower(strings.ReplaceAll(firstName, " ", ""))
	if base == "" {
		base = "user"
	}
	userID := fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])

	user := models.User{
		UserID:    userID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Authenticate checks credentials and returns a signed JWT.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	err := s.db.
		Where("email = ? AND disabled = ?", strings.ToLower(strings.TrimSpace(email)), false).
		First(&user).Error
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID, user.Email, s.jwtSecret)
}

// StartPasswordReset issues a short-lived reset code and mails it. Unknown
// emails are ignored silently so the endpoint does not leak account existence.
func (s *AuthService) StartPasswordReset(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if s.mailer == nil {
		logrus.WithField("email", user.Email).Warn("password reset requested but mailer is not configured")
		return nil
	}
	if err := s.mailer.SendResetEmail(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return invalidField("new_password", "is required")
	}

	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
