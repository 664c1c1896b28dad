package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
)

func SetupValidationRoutes(protected *gin.RouterGroup, validationController *controllers.ValidationController) {
	validate := protected.Group("/validate")
	{
		validate.GET("/username/:username", validationController.ValidateUsername)
		validate.GET("/trip-code/:code", validationController.ValidateTripCode)
	}
}
