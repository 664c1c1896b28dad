package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purelyKai/Mosaic/feed"
	"github.com/purelyKai/Mosaic/models"
	"github.com/purelyKai/Mosaic/search"
	"github.com/purelyKai/Mosaic/types"
	"github.com/purelyKai/Mosaic/utils"
	"gorm.io/gorm"
)

type FeedController struct {
	DB       *gorm.DB
	Sessions *feed.Manager
	Search   *search.Client
}

func NewFeedController(db *gorm.DB, sessions *feed.Manager, searchClient *search.Client) *FeedController {
	return &FeedController{DB: db, Sessions: sessions, Search: searchClient}
}

// GetTripFeed godoc
// @Summary Get the place feed for a trip
// @Description Resolves the trip once per session, fetches places within its radius, and annotates them with the viewer's likes. A missing trip yields an empty feed.
// @Tags feed
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/feed [get]
func (fc *FeedController) GetTripFeed(c *gin.Context) {
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

	session := fc.Sessions.Session(c.Request.Context(), user.UserID, tripID)
	places, err := session.Feed(c.Request.Context())
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}

// CloseTripFeed godoc
// @Summary End the feed session for a trip
// @Description Discards the session's selection state; late fetches no longer apply
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/feed [delete]
func (fc *FeedController) CloseTripFeed(c *gin.Context) {
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

	fc.Sessions.Close(user.UserID, tripID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetGroupFeed godoc
// @Summary Generate a group feed for all members of a trip
// @Description Posts the member IDs and the trip's geo scope to the search backend. The backend answers with either a places map or a bare place-ID list; the response mirrors whichever shape came back.
// @Tags feed
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} types.GroupFeed
// @Router /trips/{tripId}/feed/group [get]
func (fc *FeedController) GetGroupFeed(c *gin.Context) {
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

	var trip models.Trip
	if err := fc.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var memberUUIDs []uuid.UUID
	if err := fc.DB.Model(&models.TripMember{}).
		Where("trip_id = ?", tripID).
		Pluck("user_id", &memberUUIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip members"})
		return
	}

	memberIDs := make([]string, len(memberUUIDs))
	for i, id := range memberUUIDs {
		memberIDs[i] = id.String()
	}

	q := types.GeoQuery{
		Latitude:    trip.Latitude,
		Longitude:   trip.Longitude,
		RadiusMiles: trip.RadiusMiles,
	}

	groupFeed, err := fc.Search.GroupFeed(c.Request.Context(), memberIDs, q)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	switch groupFeed.Kind {
	case types.GroupFeedIDs:
		c.JSON(http.StatusOK, gin.H{"group_place_ids": groupFeed.PlaceIDs})
	default:
		c.JSON(http.StatusOK, gin.H{"places": groupFeed.Places})
	}
}

// DiscoverPlaces godoc
// @Summary Discover and fetch places around a point
// @Description Multi-step: warms the search backend's index for the area, then fetches the radius feed
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /places/discover [post]
func (fc *FeedController) DiscoverPlaces(c *gin.Context) {
	var input struct {
		Latitude    float64 `json:"latitude" binding:"required"`
		Longitude   float64 `json:"longitude" binding:"required"`
		RadiusMiles float64 `json:"radius_miles" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := types.GeoQuery{
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		RadiusMiles: input.RadiusMiles,
	}

	places, err := fc.Search.Discover(c.Request.Context(), q)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places})
}

// respondFetchError maps engine errors to HTTP statuses. Upstream failures
// carry the backend's own message when it sent one.
func respondFetchError(c *gin.Context, err error) {
	var upstream *search.UpstreamError
	var malformed *search.MalformedResponseError

	switch {
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": upstream.Error(), "step": upstream.Step})
	case errors.As(err, &malformed):
		c.JSON(http.StatusBadGateway, gin.H{"error": malformed.Error()})
	case errors.Is(err, feed.ErrSessionClosed):
		c.JSON(http.StatusGone, gin.H{"error": "Feed session closed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
	}
}
