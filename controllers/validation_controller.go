package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/models"
	"gorm.io/gorm"
)

type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

func (vc *ValidationController) ValidateUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	result := vc.DB.Where("username = ?", username).First(&user)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"exists": true})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
	}
}

func (vc *ValidationController) ValidateTripCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	var trip models.Trip
	result := vc.DB.Where("code = ?", code).First(&trip)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"exists": true})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check trip code"})
	}
}
