package main

import (
	"fmt"
	"log"
	"os"

	"restaurent-app-backend/config"
	"restaurent-app-backend/models"
	"restaurent-app-backend/routes"
	"restaurent-app-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.NotificationLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	board := services.NewNoticeBoard()

	notifier := services.NewNoteNotifier(config.DB, board)
	notifier.StartScheduler()

	r := routes.SetupRouter(board)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
