package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Trip is a user-created planning session scoped to a location and radius,
// joinable via a short code. The feed engine reads trips but never mutates
// them.
type Trip struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Code        string    `gorm:"unique;not null;type:varchar(6)" json:"code"`
	Name        string    `gorm:"not null" json:"name"`
	City        string    `gorm:"not null" json:"city"`
	Latitude    float64   `gorm:"not null;type:decimal(10,8)" json:"latitude"`
	Longitude   float64   `gorm:"not null;type:decimal(11,8)" json:"longitude"`
	RadiusMiles float64   `gorm:"not null;default:15" json:"radius_miles"`
	// Categories narrows the feed for this trip, e.g. ["food", "nature"].
	Categories pq.StringArray `json:"categories" gorm:"type:text[]"`
	CreatedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	Creator    User           `json:"-" gorm:"foreignKey:CreatedBy"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TripMember links a user to a trip. (trip_id, user_id) is unique so joining
// twice surfaces as a constraint violation.
type TripMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TripID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_user" json:"trip_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_user" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (m *TripMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
