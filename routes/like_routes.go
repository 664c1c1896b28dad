package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
)

func SetupLikeRoutes(protected *gin.RouterGroup, likeController *controllers.LikeController) {
	trips := protected.Group("/trips")
	{
		trips.POST("/:tripId/places/:placeId/like", likeController.ToggleLike)
		trips.GET("/:tripId/likes", likeController.GetTripLikes)
	}
}
