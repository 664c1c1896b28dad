package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/preferences"
	"github.com/purelyKai/Mosaic/search"
	"github.com/purelyKai/Mosaic/utils"
)

type PreferenceController struct {
	Pipeline *preferences.Pipeline
	Taxonomy preferences.Taxonomy
}

func NewPreferenceController(pipeline *preferences.Pipeline, taxonomy preferences.Taxonomy) *PreferenceController {
	return &PreferenceController{Pipeline: pipeline, Taxonomy: taxonomy}
}

// GetTaxonomy godoc
// @Summary Get the preference taxonomy
// @Description Category names with their legal labels, in form order
// @Tags preferences
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences/taxonomy [get]
func (pc *PreferenceController) GetTaxonomy(c *gin.Context) {
	categories := make([]gin.H, 0, len(pc.Taxonomy.Categories))
	for _, category := range pc.Taxonomy.Categories {
		categories = append(categories, gin.H{
			"name":   category.Name,
			"labels": category.Labels,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// SubmitPreferences godoc
// @Summary Submit the viewer's preference selections
// @Description Synthesizes sentences from the selections and indexes them in the search backend, then flags the questionnaire as filled. Submission failures are surfaced so the client can retry.
// @Tags preferences
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /preferences [post]
func (pc *PreferenceController) SubmitPreferences(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Selections []string `json:"selections"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Pipeline.Submit(c.Request.Context(), user.UserID.String(), input.Selections); err != nil {
		var submission *search.SubmissionError
		if errors.As(err, &submission) {
			c.JSON(http.StatusBadGateway, gin.H{"error": submission.Error(), "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit preferences", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Preferences saved"})
}
