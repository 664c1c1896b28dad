package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purelyKai/Mosaic/models"
	"gorm.io/gorm"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// GetTripMembers godoc
// @Summary List trip members ranked by like count
// @Tags members
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/members [get]
func (mc *MemberController) GetTripMembers(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	var members []struct {
		UserID      uuid.UUID `json:"userId"`
		Username    string    `json:"username"`
		DisplayName *string   `json:"displayName"`
		PhotoURL    *string   `json:"photoUrl"`
		JoinedAt    time.Time `json:"joinedAt"`
		LikeCount   int64     `json:"likeCount"`
	}

	result := mc.DB.Model(&models.TripMember{}).
		Select(`users.id as user_id, users.username, users.display_name, users.photo_url,
			trip_members.joined_at,
			(SELECT COUNT(*) FROM place_likes
				WHERE place_likes.user_id = users.id
				AND place_likes.trip_id = trip_members.trip_id) as like_count`).
		Joins("JOIN users ON users.id = trip_members.user_id").
		Where("trip_members.trip_id = ?", tripID).
		Order("like_count DESC, trip_members.joined_at ASC").
		Find(&members)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
