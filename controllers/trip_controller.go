package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purelyKai/Mosaic/models"
	"github.com/purelyKai/Mosaic/types"
	"github.com/purelyKai/Mosaic/utils"
	"gorm.io/gorm"
)

type TripController struct {
	DB *gorm.DB
}

func NewTripController(db *gorm.DB) *TripController {
	return &TripController{DB: db}
}

type CreateTripInput struct {
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Latitude    float64  `json:"latitude" binding:"required"`
	Longitude   float64  `json:"longitude" binding:"required"`
	RadiusMiles float64  `json:"radius_miles"`
	Categories  []string `json:"categories"`
}

// CreateTrip godoc
// @Summary Create a new trip
// @Description Creates a trip with a generated 6-character join code and adds the creator as a member
// @Tags trips
// @Accept json
// @Produce json
// @Success 201 {object} models.Trip
// @Router /trips [post]
func (tc *TripController) CreateTrip(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input CreateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, category := range input.Categories {
		if !types.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown category: %s", category)})
			return
		}
	}

	radius := input.RadiusMiles
	if radius <= 0 {
		radius = 15
	}

	code, err := utils.GenerateTripCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trip code"})
		return
	}

	trip := models.Trip{
		Code:        code,
		Name:        input.Name,
		City:        input.City,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		RadiusMiles: radius,
		Categories:  input.Categories,
		CreatedBy:   user.UserID,
	}

	tx := tc.DB.Begin()

	if err := tx.Create(&trip).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	member := models.TripMember{TripID: trip.ID, UserID: user.UserID}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add creator to trip"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusCreated, trip)
}

// JoinTrip godoc
// @Summary Join an existing trip by code
// @Tags trips
// @Accept json
// @Produce json
// @Success 200 {object} models.Trip
// @Router /trips/join [post]
func (tc *TripController) JoinTrip(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if len(code) != utils.TripCodeLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trip code must be 6 characters"})
		return
	}

	var trip models.Trip
	if err := tc.DB.Where("code = ?", code).First(&trip).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No trip found with that code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search for trip"})
		return
	}

	var existing models.TripMember
	result := tc.DB.Where("trip_id = ? AND user_id = ?", trip.ID, user.UserID).First(&existing)
	if result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You are already a member of this trip"})
		return
	}

	tx := tc.DB.Begin()

	member := models.TripMember{TripID: trip.ID, UserID: user.UserID}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join trip"})
		return
	}

	activity := models.ActivityLog{
		UserID:   user.UserID,
		TripID:   trip.ID,
		Activity: "trip_joined",
	}
	if err := tx.Create(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity log"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, trip)
}

// GetUserTrips godoc
// @Summary List the trips the current user belongs to
// @Description Newest first; read errors degrade to an empty list
// @Tags trips
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /trips [get]
func (tc *TripController) GetUserTrips(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var trips []models.Trip
	err := tc.DB.
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.user_id = ?", user.UserID).
		Order("trips.created_at DESC").
		Find(&trips).Error
	if err != nil {
		// Degrade to an empty list rather than erroring the screen.
		trips = []models.Trip{}
	}

	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GetTrip godoc
// @Summary Get a trip by ID
// @Tags trips
// @Produce json
// @Success 200 {object} models.Trip
// @Router /trips/{tripId} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip id"})
		return
	}

	var trip models.Trip
	if err := tc.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// LeaveTrip godoc
// @Summary Leave a trip
// @Tags trips
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /trips/{tripId}/leave [post]
func (tc *TripController) LeaveTrip(c *gin.Context) {
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

	result := tc.DB.Where("trip_id = ? AND user_id = ?", tripID, user.UserID).Delete(&models.TripMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave trip"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a member of this trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Left trip"})
}
