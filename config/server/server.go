package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/redis"

	"github.com/gin-gonic/gin"
)

type Options struct {
	MongoEnabled     bool
	CacheEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func()

	MigrationEnabled bool
	MigrationHandler func()

	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions() Options {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Options{
		MongoEnabled:     true,
		CacheEnabled:     true,
		WebServerEnabled: true,
		WebServerPort:    port,
	}
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

/*
* Connect mongo and redis
* Run migrations and jobs when enabled
* Serve gin with graceful shutdown, releasing the mongo handle on exit
 */
func Start(opts Options) {
	ctx := context.Background()

	if opts.MongoEnabled {
		uri := envOr("MONGO_URI", "mongodb://localhost:27017")
		dbName := envOr("MONGO_DB", "pawshelter")
		if err := db.Init(ctx, uri, dbName); err != nil {
			log.Fatalln("Unable to connect to mongo: ", err)
		}
	}

	if opts.CacheEnabled {
		addr := envOr("REDIS_ADDR", "localhost:6379")
		if err := redis.Init(addr, os.Getenv("REDIS_PASSWORD")); err != nil {
			log.Println("Redis unavailable, continuing without cache: ", err)
		}
	}

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		opts.MigrationHandler()
	}

	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}

	if !opts.WebServerEnabled {
		return
	}

	r := gin.Default()
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}

	srv := &http.Server{
		Addr:    ":" + opts.WebServerPort,
		Handler: r,
	}

	go func() {
		log.Println("Server listening on port ", opts.WebServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Error during server shutdown: ", err)
	}
	if err := redis.Close(); err != nil {
		log.Println("Error while closing redis: ", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		log.Println("Error while disconnecting mongo: ", err)
	}
}
