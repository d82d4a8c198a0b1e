package handlers

import (
	userRepoPkg "teampulse/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Status endpoints
	SaveStatusHandler      gin.HandlerFunc
	GetStatusHandler       gin.HandlerFunc
	GetTeamStatusHandler   gin.HandlerFunc
	TranscribeVoiceHandler gin.HandlerFunc

	// Scheduling endpoints
	QuickSyncHandler     gin.HandlerFunc
	GroupScheduleHandler gin.HandlerFunc
	BookMeetingHandler   gin.HandlerFunc
	ListMeetingsHandler  gin.HandlerFunc

	// Team endpoints
	CreateTeamHandler    gin.HandlerFunc
	GetTeamHandler       gin.HandlerFunc
	AddTeamMemberHandler gin.HandlerFunc
	ListMyTeamsHandler   gin.HandlerFunc

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetUserByIDHandler         gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc
	DeleteUserHandler          gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
}
