package main

import (
	"testing"

	"PawShelter360/config/server"

	"github.com/gin-gonic/gin"
)

func TestRun_FullCoverage(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedOpts server.Options

	// intercept options
	startServer = func(opts server.Options) {
		capturedOpts = opts
	}

	main()
	run()

	capturedOpts.JobsHandler()
	capturedOpts.MigrationHandler()
	capturedOpts.WebServerPreHandler(gin.New())
}
