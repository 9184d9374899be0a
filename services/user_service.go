package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/utils"
)

type UserService struct {
	db       *gorm.DB
	uploader *utils.ImageUploader // nil disables picture uploads
}

func NewUserService(db *gorm.DB, uploader *utils.ImageUploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Birthday       string  `json:"birthday"` // YYYY-MM-DD
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	DietaryNotes   string  `json:"dietary_notes"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URL
	Onboarded      bool    `json:"onboarded"`
}

func (s *UserService) Profile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	birthday := ""
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
		birthday = user.Birthday.Format("2006-01-02")
	}

	var bmi float64
	bmiCategory := ""
	if v, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		bmi = v
		bmiCategory = utils.BMICategory(v)
	}

	return map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        birthday,
		"age":             age,
		"height":          user.Height,
		"weight":          user.Weight,
		"bmi":             bmi,
		"bmi_category":    bmiCategory,
		"dietary_notes":   user.DietaryNotes,
		"profile_picture": user.ProfilePicture,
		"onboarded":       user.Onboarded,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) error {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", in.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if in.Height > 0 {
		user.Height = in.Height
	}
	if in.Weight > 0 {
		user.Weight = in.Weight
	}
	if in.DietaryNotes != "" {
		user.DietaryNotes = in.DietaryNotes
	}
	if in.ProfilePicture != "" {
		if s.uploader == nil {
			return errors.New("profile picture uploads are not configured")
		}
		url, err := s.uploader.UploadBase64Image(ctx, in.ProfilePicture, user.UserID)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}
	user.Onboarded = in.Onboarded

	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
