package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/purelyKai/Mosaic/controllers"
)

func SetupTripRoutes(protected *gin.RouterGroup, tripController *controllers.TripController, memberController *controllers.MemberController) {
	trips := protected.Group("/trips")
	{
		trips.POST("", tripController.CreateTrip)
		trips.GET("", tripController.GetUserTrips)
		trips.POST("/join", tripController.JoinTrip)
		trips.GET("/:tripId", tripController.GetTrip)
		trips.POST("/:tripId/leave", tripController.LeaveTrip)
		trips.GET("/:tripId/members", memberController.GetTripMembers)
	}
}
