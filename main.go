package main

import (
	"MedicalSuite/Constants"
	"MedicalSuite/Controllers"
	"MedicalSuite/CronJobs"
	"MedicalSuite/Gateway"
	"MedicalSuite/Geo"
	"MedicalSuite/Models"
	"MedicalSuite/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Constants.Load()

	app := Controllers.NewApp(
		Models.NewSessionStore(),
		Gateway.NewClient(Constants.GatewayBase),
		Geo.NewLocator(Constants.GeoServiceURL),
	)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{Constants.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true, // Allow cookies
	},
	))
	Routes.ConfigRoutes(router, app)

	janitor := CronJobs.NewExportJanitor(Constants.ExportsDir)
	scheduler := janitor.StartCleanupCron()
	_ = scheduler

	router.Run(":" + Constants.Port)
}
