package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teampulse/config"
	"teampulse/cron"
	"teampulse/database"
	meetingRepoPkg "teampulse/database/repository/meeting"
	statusRepoPkg "teampulse/database/repository/status"
	teamRepoPkg "teampulse/database/repository/team"
	userRepoPkg "teampulse/database/repository/user"
	"teampulse/handlers"
	"teampulse/middleware"
	"teampulse/routes"
	"teampulse/services/availability"
	"teampulse/services/notification"
	"teampulse/services/scheduling"
	"teampulse/services/status"
	"teampulse/services/tasks"
	"teampulse/services/transcription"
	"teampulse/services/user"
	"teampulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	statusRepo := statusRepoPkg.NewMongoStatusRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	teamRepo := teamRepoPkg.NewMongoTeamRepo()
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	statusFeed := status.NewRedisStatusFeed(utils.GetCacheClient())
	statusService := &status.DefaultStatusService{
		Repo:  statusRepo,
		Teams: teamRepo,
		Feed:  statusFeed,
		Cache: statusFeed,
		Classifier: availability.ClassifierConfig{
			WorkdayEndMin: config.AppConfig.WorkdayEndMin,
		},
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	reminderClient := &tasks.ReminderClient{Client: asynqClient}

	schedulingService := &scheduling.DefaultSchedulingService{
		StatusRepo:   statusRepo,
		MeetingRepo:  meetingRepo,
		StatusSvc:    statusService,
		Notification: notificationService,
		Reminders:    reminderClient,
		Fallback: &scheduling.MockSlotGenerator{
			WorkdayStartMin: config.AppConfig.WorkdayStartMin,
			WorkdayEndMin:   config.AppConfig.WorkdayEndMin,
		},
		Config: scheduling.Config{
			WorkdayStartMin: config.AppConfig.WorkdayStartMin,
			WorkdayEndMin:   config.AppConfig.WorkdayEndMin,
			DaysAhead:       config.AppConfig.SlotSearchDays,
		},
	}

	transcriptionService := transcription.NewGoogleSpeechService(config.AppConfig.GoogleServiceAccountFile)

	// handlers.
	statusHandler := handlers.NewStatusHandler(statusService)
	schedulingHandler := handlers.NewSchedulingHandler(
		schedulingService,
		config.AppConfig.QuickSyncMaxSlots,
		config.AppConfig.GroupScheduleMaxSlots,
	)
	voiceHandler := handlers.NewVoiceHandler(transcriptionService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Status endpoints.
		SaveStatusHandler:      statusHandler.SaveStatusHandler,
		GetStatusHandler:       statusHandler.GetStatusHandler,
		GetTeamStatusHandler:   statusHandler.GetTeamStatusHandler,
		TranscribeVoiceHandler: voiceHandler.TranscribeVoiceHandler,

		// Scheduling endpoints.
		QuickSyncHandler:     schedulingHandler.QuickSyncHandler,
		GroupScheduleHandler: schedulingHandler.GroupScheduleHandler,
		BookMeetingHandler:   schedulingHandler.BookMeetingHandler,
		ListMeetingsHandler:  schedulingHandler.ListMeetingsHandler,

		// Team endpoints.
		CreateTeamHandler:    teamHandler.CreateTeamHandler,
		GetTeamHandler:       teamHandler.GetTeamHandler,
		AddTeamMemberHandler: teamHandler.AddTeamMemberHandler,
		ListMyTeamsHandler:   teamHandler.ListMyTeamsHandler,

		// User endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		GetUserByIDHandler:         userHandler.GetUserByIDHandler,
		UpdateFCMTokenHandler:      userHandler.UpdateFCMTokenHandler,
		DeleteUserHandler:          userHandler.DeleteUserHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health checks.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := asynqClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
