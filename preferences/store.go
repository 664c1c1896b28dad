package preferences

import (
	"context"

	"gorm.io/gorm"

	"github.com/purelyKai/Mosaic/models"
)

// GormProfileStore writes the questionnaire flag to the relational store.
type GormProfileStore struct {
	DB *gorm.DB
}

func (s *GormProfileStore) MarkQuestionnaireFilled(ctx context.Context, userID string) error {
	return s.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("filled_questionnaire", true).Error
}
