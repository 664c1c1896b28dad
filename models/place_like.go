package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceLike is a persisted like signal. PlaceID is the search backend's
// identifier, not a local foreign key; places themselves live upstream.
type PlaceLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_trip_place" json:"user_id"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_trip_place" json:"trip_id"`
	PlaceID   string    `gorm:"not null;uniqueIndex:idx_like_user_trip_place" json:"place_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

func (l *PlaceLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
