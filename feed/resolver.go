package feed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/purelyKai/Mosaic/models"
)

// GormTripResolver resolves trips from the relational store.
type GormTripResolver struct {
	DB *gorm.DB
}

func (r *GormTripResolver) ResolveTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := r.DB.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GormLikeLoader reads the viewer's persisted likes from the relational
// store.
type GormLikeLoader struct {
	DB *gorm.DB
}

func (l *GormLikeLoader) LikedPlaceIDs(ctx context.Context, userID, tripID uuid.UUID) ([]string, error) {
	var placeIDs []string
	err := l.DB.WithContext(ctx).
		Model(&models.PlaceLike{}).
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		Pluck("place_id", &placeIDs).Error
	return placeIDs, err
}
