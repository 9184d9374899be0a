package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/utils"
)

// FeedbackService persists widget submissions and forwards them by email when
// a mailer is configured. The email leg is best-effort: the row is the record
// of truth and a send failure never fails the request.
type FeedbackService struct {
	db           *gorm.DB
	mailer       *utils.Mailer // nil means store-only
	supportEmail string
}

func NewFeedbackService(db *gorm.DB, mailer *utils.Mailer, supportEmail string) *FeedbackService {
	return &FeedbackService{db: db, mailer: mailer, supportEmail: supportEmail}
}

type FeedbackInput struct {
	Category     string `json:"category"`
	Message      string `json:"message"`
	Page         string `json:"page"`
	ContactEmail string `json:"contact_email"`
}

func (s *FeedbackService) Submit(ctx context.Context, userID uint, in FeedbackInput) (*models.Feedback, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, invalidField("message", "is required")
	}

	category := strings.ToLower(strings.TrimSpace(in.Category))
	switch category {
	case "bug", "idea", "other":
	default:
		category = "other"
	}

	fb := &models.Feedback{
		UserID:       userID,
		Category:     category,
		Message:      strings.TrimSpace(in.Message),
		Page:         in.Page,
		ContactEmail: in.ContactEmail,
	}
	if err := s.db.Create(fb).Error; err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	if s.mailer != nil && s.supportEmail != "" {
		subject := fmt.Sprintf("[feedback/%s] from user %d", fb.Category, userID)
		body := fmt.Sprintf("Page: %s\nContact: %s\n\n%s", fb.Page, fb.ContactEmail, fb.Message)
		if err := s.mailer.Send(ctx, s.supportEmail, subject, body); err != nil {
			logrus.WithError(err).WithField("feedback_id", fb.ID).Warn("feedback email fallback failed")
		} else {
			fb.Delivered = true
			if err := s.db.Save(fb).Error; err != nil {
				logrus.WithError(err).Warn("failed to mark feedback delivered")
			}
		}
	}

	return fb, nil
}
