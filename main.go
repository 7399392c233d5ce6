package main

import (
	"log"
	"os"

	"github.com/goldDdev/api-dhj-sub000/controllers/absent"
	"github.com/goldDdev/api-dhj-sub000/controllers/auth"
	"github.com/goldDdev/api-dhj-sub000/controllers/boq"
	"github.com/goldDdev/api-dhj-sub000/controllers/centerlocation"
	"github.com/goldDdev/api-dhj-sub000/controllers/dailyplan"
	"github.com/goldDdev/api-dhj-sub000/controllers/employee"
	"github.com/goldDdev/api-dhj-sub000/controllers/inventory"
	"github.com/goldDdev/api-dhj-sub000/controllers/overtime"
	"github.com/goldDdev/api-dhj-sub000/controllers/payroll"
	"github.com/goldDdev/api-dhj-sub000/controllers/profile"
	"github.com/goldDdev/api-dhj-sub000/controllers/project"
	"github.com/goldDdev/api-dhj-sub000/controllers/setting"
	"github.com/goldDdev/api-dhj-sub000/controllers/tracking"
	"github.com/goldDdev/api-dhj-sub000/controllers/user"
	"github.com/goldDdev/api-dhj-sub000/middlewares"
	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	models.ConnectDatabase()
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.POST("/login", authcontroller.LoginHandler)
		v1.GET("/logout", authcontroller.Logout)

		mobile := v1.Group("/mobile")
		mobile.Use(middlewares.AuthMiddleware())
		{
			mobile.GET("/profile", profilecontroller.GetUserProfile)
			mobile.POST("/tracking", tracking.PingHandler)
			mobile.GET("/daily-plan", dailyplan.TodayHandler)

			mobile.GET("/absent", absent.TodayHandler)
			mobile.POST("/absent", absent.BatchCreateHandler)
			mobile.PUT("/absent/come", absent.AddComeHandler)
			mobile.PUT("/absent/close", absent.AddCloseHandler)
			mobile.GET("/absent/predict-close", absent.PredictCloseHandler)

			mobile.POST("/additional-hour", overtime.CreateHandler)
			mobile.GET("/additional-hour", overtime.HistoryHandler)
			mobile.DELETE("/additional-hour/:id", overtime.DestroyHandler)

			mobile.POST("/inventory-request", inventorycontroller.CreateRequisitionHandler)
		}

		web := v1.Group("/web")
		web.Use(middlewares.AuthMiddleware())
		web.Use(middlewares.RoleMiddleware(models.RoleAdmin, models.RoleOwner, models.RolePM, models.RolePCC, models.RolePC))
		{
			web.GET("/project", projectcontroller.ListHandler)
			web.POST("/project", projectcontroller.CreateHandler)
			web.GET("/project/:id", projectcontroller.DetailHandler)
			web.PUT("/project/:id", projectcontroller.UpdateHandler)
			web.DELETE("/project/:id", projectcontroller.DestroyHandler)
			web.POST("/project/:id/worker", projectcontroller.AddWorkerHandler)

			web.GET("/employee", employeecontroller.ListHandler)
			web.POST("/employee", employeecontroller.CreateHandler)
			web.GET("/employee/:id", employeecontroller.DetailHandler)
			web.PUT("/employee/:id", employeecontroller.UpdateHandler)
			web.DELETE("/employee/:id", employeecontroller.DestroyHandler)

			web.GET("/project-overtime", overtime.ListHandler)
			web.PUT("/project-overtime/status", overtime.UpdateStatusHandler)
			web.DELETE("/project-overtime/:id", overtime.WebDestroyHandler)

			web.GET("/daily-plan", dailyplan.ListHandler)
			web.POST("/daily-plan", dailyplan.CreateHandler)
			web.DELETE("/daily-plan/:id", dailyplan.DestroyHandler)

			web.GET("/tracking", tracking.ListHandler)

			web.GET("/boq", boqcontroller.ListHandler)
			web.POST("/boq", boqcontroller.CreateHandler)
			web.PUT("/boq/:id", boqcontroller.UpdateHandler)
			web.DELETE("/boq/:id", boqcontroller.DestroyHandler)

			web.GET("/inventory", inventorycontroller.ListHandler)
			web.POST("/inventory", inventorycontroller.CreateHandler)
			web.GET("/inventory-request", inventorycontroller.ListRequisitionHandler)
			web.PUT("/inventory-request/status", inventorycontroller.UpdateRequisitionStatusHandler)

			web.GET("/center-location", centerlocationcontroller.ListHandler)
			web.POST("/center-location", centerlocationcontroller.CreateHandler)
			web.DELETE("/center-location/:id", centerlocationcontroller.DestroyHandler)

			web.GET("/setting", settingcontroller.ListHandler)
			web.PUT("/setting", settingcontroller.UpsertHandler)

			web.GET("/user", usercontroller.ListHandler)
			web.POST("/user", usercontroller.CreateHandler)
			web.PUT("/user/:id/password", usercontroller.ResetPasswordHandler)
			web.DELETE("/user/:id", usercontroller.DestroyHandler)

			web.GET("/payroll", payrollcontroller.RecapHandler)
			web.GET("/payroll/export", payrollcontroller.ExportHandler)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s\n", port)

	router.Run(":" + port)
}
