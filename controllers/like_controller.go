package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purelyKai/Mosaic/feed"
	"github.com/purelyKai/Mosaic/models"
	"github.com/purelyKai/Mosaic/search"
	"github.com/purelyKai/Mosaic/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeController struct {
	DB       *gorm.DB
	Sessions *feed.Manager
	Search   *search.Client
	Logger   *zap.Logger
}

func NewLikeController(db *gorm.DB, sessions *feed.Manager, searchClient *search.Client, logger *zap.Logger) *LikeController {
	return &LikeController{DB: db, Sessions: sessions, Search: searchClient, Logger: logger}
}

// ToggleLike godoc
// @Summary Like or unlike a place within a trip
// @Description Toggles the place in the viewer's selection set, persists the like row, and posts the like signal to the search backend. A failed signal is logged; the like still stands.
// @Tags likes
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param placeId path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/places/{placeId}/like [post]
func (lc *LikeController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}
	placeID := c.Param("placeId")

	session := lc.Sessions.Session(c.Request.Context(), user.UserID, tripID)
	liked := session.Selection().Toggle(placeID)

	tx := lc.DB.Begin()

	if liked {
		like := models.PlaceLike{
			UserID:  user.UserID,
			TripID:  tripID,
			PlaceID: placeID,
		}
		// Idempotent: the row may already exist if the like was persisted
		// by an earlier session.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			tx.Rollback()
			session.Selection().Toggle(placeID) // restore
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like place"})
			return
		}

		activity := models.ActivityLog{
			UserID:   user.UserID,
			TripID:   tripID,
			PlaceID:  placeID,
			Activity: "place_liked",
		}
		if err := tx.Create(&activity).Error; err != nil {
			tx.Rollback()
			session.Selection().Toggle(placeID) // restore
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity log"})
			return
		}

		tx.Commit()

		// Fold the like into the user's search profile. The like is already
		// recorded; a failed signal is only logged.
		if err := lc.Search.UpdateUserProfile(c.Request.Context(), user.UserID.String(), placeID); err != nil {
			lc.Logger.Warn("like recorded but profile signal failed",
				zap.String("userId", user.UserID.String()),
				zap.String("placeId", placeID),
				zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"liked": true})
		return
	}

	if err := tx.Where("user_id = ? AND trip_id = ? AND place_id = ?", user.UserID, tripID, placeID).
		Delete(&models.PlaceLike{}).Error; err != nil {
		tx.Rollback()
		session.Selection().Toggle(placeID) // restore
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike place"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"liked": false})
}

// GetTripLikes godoc
// @Summary List the viewer's liked place IDs for a trip
// @Tags likes
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/likes [get]
func (lc *LikeController) GetTripLikes(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	var placeIDs []string
	if err := lc.DB.Model(&models.PlaceLike{}).
		Where("user_id = ? AND trip_id = ?", user.UserID, tripID).
		Order("created_at DESC").
		Pluck("place_id", &placeIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"place_ids": placeIDs})
}
