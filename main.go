package main

import (
	"log"

	"PawShelter360/config/server"
	"PawShelter360/jobs"
	"PawShelter360/migrations"
	"PawShelter360/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		CacheEnabled:     defaultopts.CacheEnabled,
		MongoEnabled:     defaultopts.MongoEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			jobs.RunTodayScheduler()
			jobs.StartDailyScheduler()
		},

		MigrationEnabled: !isTest,
		MigrationHandler: func() {
			if isTest {
				return
			}
			migrations.SeedIdentifierCounters()
			migrations.BackfillAdoptionReadiness()
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r)
		},
	}
	startServer(options)
}
