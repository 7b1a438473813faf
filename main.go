package main

import (
	"log"

	"board-cli/api"
	"board-cli/auth"
	"board-cli/cmd"
	"board-cli/fs"
	"board-cli/term"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid circular imports
	auth.SetApiClient(api.Client)

	// the gateway attaches the stored session's token to every request, so
	// resolve it up front; absent or malformed just means unauthenticated
	if _, err := auth.Load(); err != nil {
		term.OutputErrorAndExit("Error loading session: %v", err)
	}

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	})
}

func main() {
	cmd.Execute()
}
