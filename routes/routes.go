package routes

import (
	"os"
	"strings"

	"restaurent-app-backend/config"
	"restaurent-app-backend/controllers"
	"restaurent-app-backend/services"
	"restaurent-app-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(board *services.NoticeBoard) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if env := os.Getenv("CLIENT_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	dashboardController := controllers.DashboardController{Board: board}
	noteController := controllers.NoteController{Board: board}

	v1 := r.Group("/v1")
	{
		v1.POST("/login", controllers.Login)

		v1.Use(utils.AuthMiddleware())

		v1.GET("/me", controllers.Me)
		v1.GET("/dashboard", dashboardController.GetOverview)

		v1.GET("/fetch-branches", controllers.GetBranches)
		v1.GET("/fetch-branches/:userId", controllers.GetBranchesForUser)

		v1.GET("/menu", controllers.GetMenu)
		v1.GET("/fetch-orders/:userId", controllers.GetOrdersForUser)
		v1.POST("/create-order", controllers.CreateOrder)
		v1.PATCH("/change-order-status", controllers.ChangeOrderStatus)

		v1.GET("/fetch-users", controllers.GetUsers)
		v1.POST("/create-user", controllers.CreateUser)
		v1.PUT("/update-user/:id", controllers.UpdateUser)
		v1.DELETE("/delete-user/:id", controllers.DeleteUser)

		v1.GET("/supervisor-notes", noteController.GetNotes)
		v1.POST("/supervisor-notes/:id/resolve", noteController.ResolveNote)
	}

	return r
}
