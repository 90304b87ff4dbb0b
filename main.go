package main

import (
	"fmt"
	"log"
	"os"
	"spalounge-backend/config"
	"spalounge-backend/controllers"
	"spalounge-backend/models"
	"spalounge-backend/routes"
	"spalounge-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Membership{},
		&models.Service{},
		&models.Booking{},
		&models.NotificationTemplate{},
		&models.Notification{},
	)
}

func main() {
	logger := config.Logger
	defer logger.Sync()

	gateway := services.NewExpoClient()
	engine := services.NewDispatchService(gateway, services.NewAuditStore(config.DB), logger)

	reminders := services.NewReminderService(config.DB, engine, logger)
	scheduler := reminders.StartScheduler()
	defer scheduler.Stop()

	broadcasts := services.NewBroadcastService(config.DB, engine, services.NewTwilioSender(), logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(&controllers.BroadcastController{Service: broadcasts})
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
