package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
)

func SetupPreferenceRoutes(protected *gin.RouterGroup, preferenceController *controllers.PreferenceController) {
	prefs := protected.Group("/preferences")
	{
		prefs.GET("/taxonomy", preferenceController.GetTaxonomy)
		prefs.POST("", preferenceController.SubmitPreferences)
	}
}
