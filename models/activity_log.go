package models

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	TripID    uuid.UUID `json:"tripId" gorm:"type:uuid"`
	PlaceID   string    `json:"placeId"`
	Activity  string    `json:"activity" gorm:"not null;type:varchar(50)"` // "place_liked", "trip_joined", etc.
}
