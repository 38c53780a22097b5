package main

import (
	"testing"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-gonic/gin"
)

func TestRunCapturesOptions(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedOpts server.Options

	// intercept options
	startServer = func(opts server.Options) {
		capturedOpts = opts
	}

	run()

	// every handler is a no-op in test mode, calling them must not panic
	capturedOpts.JobsHandler()
	capturedOpts.MigrationHandler()
	capturedOpts.WebServerPreHandler(gin.New())
}
