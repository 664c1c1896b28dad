package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Email               string         `gorm:"unique;not null" json:"email"`
	Password            string         `json:"-"` // empty for Google-only accounts
	Username            string         `gorm:"unique;not null" json:"username"`
	DisplayName         *string        `json:"display_name"`
	PhotoURL            *string        `json:"photo_url"`
	FilledQuestionnaire bool           `gorm:"default:false" json:"filled_questionnaire"`
	Trips               []Trip         `json:"trips,omitempty" gorm:"foreignKey:CreatedBy"`
	Likes               []PlaceLike    `json:"likes,omitempty" gorm:"foreignKey:UserID"`
	RefreshTokens       []RefreshToken `json:"refresh_tokens,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
