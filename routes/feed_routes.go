package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
)

func SetupFeedRoutes(protected *gin.RouterGroup, feedController *controllers.FeedController) {
	trips := protected.Group("/trips")
	{
		trips.GET("/:tripId/feed", feedController.GetTripFeed)
		trips.DELETE("/:tripId/feed", feedController.CloseTripFeed)
		trips.GET("/:tripId/feed/group", feedController.GetGroupFeed)
	}

	places := protected.Group("/places")
	{
		places.POST("/discover", feedController.DiscoverPlaces)
	}
}
