package routes

import (
	"log"

	"github.com/Pragathi1123/eco-hive-smart/config"
	"github.com/Pragathi1123/eco-hive-smart/controllers"
	"github.com/Pragathi1123/eco-hive-smart/middlewares"
	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	rt := services.NewRealtimeHub()

	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		ps = nil
	}
	services.InitAlertDeps(config.DB, rt, ps)

	wasteSvc := services.NewWasteLogService(config.DB, rt)
	analyticsSvc := services.NewAnalyticsService(config.DB)
	achievementSvc := services.NewAchievementService(config.DB)
	leaderboardSvc := services.NewLeaderboardService(config.DB)
	classificationSvc := services.NewClassificationService(config.DB)
	lookupSvc := services.NewProductLookupService("")
	imageSvc := services.NewWasteImageService()
	sensorSvc := services.NewSensorService(config.DB, rt)
	userSvc := services.NewUserService(config.DB)

	photoSvc, err := services.NewPhotoClassificationService()
	if err != nil {
		log.Printf("photo classification unavailable: %v", err)
	}

	wasteCtl := controllers.NewWasteLogController(wasteSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	achievementCtl := controllers.NewAchievementController(achievementSvc)
	leaderboardCtl := controllers.NewLeaderboardController(leaderboardSvc)
	scanCtl := controllers.NewScanController(lookupSvc, classificationSvc, photoSvc)
	imageCtl := controllers.NewImageController(imageSvc)
	sensorCtl := controllers.NewSensorController(sensorSvc)
	realtimeCtl := controllers.NewRealtimeController(rt)
	userCtl := controllers.NewUserController(userSvc)

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
	r.GET("/education/topics", controllers.GetEducationTopics)

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)
		api.GET("/users", userCtl.ListMembers)
		api.GET("/user/alerts", controllers.ListAlerts)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		api.GET("/categories", wasteCtl.ListCategories)
		api.POST("/logs", wasteCtl.CreateLog)
		api.GET("/logs", wasteCtl.ListLogs)

		api.GET("/stats", analyticsCtl.GetStats)
		api.GET("/analytics/series", analyticsCtl.GetSeries)

		api.GET("/achievements", achievementCtl.List)
		api.POST("/achievements/check", achievementCtl.Check)

		api.GET("/leaderboard", leaderboardCtl.Get)

		api.GET("/scan/:barcode", scanCtl.LookupBarcode)
		api.POST("/classify/confirm", scanCtl.ConfirmClassification)
		api.GET("/classify/accuracy", scanCtl.Accuracy)
		if photoSvc != nil {
			api.POST("/classify/photo", scanCtl.ClassifyPhoto)
		}

		api.POST("/images/waste", imageCtl.Generate)

		api.GET("/sensor/config", sensorCtl.GetConfig)
		api.PUT("/sensor/config", sensorCtl.SaveConfig)
		api.GET("/sensor/weight", sensorCtl.GetWeight)
		api.POST("/sensor/poll/start", sensorCtl.StartPolling)
		api.POST("/sensor/poll/stop", sensorCtl.StopPolling)

		if ps != nil {
			deviceCtl := controllers.NewDeviceController(ps)
			api.POST("/devices", deviceCtl.Register)
		}

		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
