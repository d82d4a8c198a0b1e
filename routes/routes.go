package routes

import (
	"net/http"
	"time"

	"teampulse/handlers"
	"teampulse/middleware"
	"teampulse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/delete/:id", hb.DeleteUserHandler)
		api.DELETE("/revoke/:id", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterStatusRoutes registers status board endpoints.
func RegisterStatusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/status")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.SaveStatusHandler)
		api.GET("/:userID", hb.GetStatusHandler)
		api.POST("/voice", hb.TranscribeVoiceHandler)
	}
}

// RegisterTeamRoutes registers team management endpoints.
func RegisterTeamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/teams")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateTeamHandler)
		api.GET("", hb.ListMyTeamsHandler)
		api.GET("/:teamID", hb.GetTeamHandler)
		api.POST("/:teamID/members", hb.AddTeamMemberHandler)
		api.GET("/:teamID/status", hb.GetTeamStatusHandler)
	}
}

// RegisterScheduleRoutes sets up the endpoints for slot search and booking.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	scheduleGroup := r.Group("/api/schedule")
	{
		scheduleGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		scheduleGroup.POST("/quick-sync", hb.QuickSyncHandler)
		scheduleGroup.POST("/group", hb.GroupScheduleHandler)
		scheduleGroup.POST("/book", hb.BookMeetingHandler)
		scheduleGroup.GET("/meetings", hb.ListMeetingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterStatusRoutes(r, hb)
	RegisterTeamRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
