package fs

import (
	"os"
	"path/filepath"

	"board-cli/term"
)

var HomeDir string
var HomeBoardDir string
var HomeSessionPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("BOARD_ENV") == "development" {
		HomeBoardDir = filepath.Join(home, ".board-home-dev")
	} else {
		HomeBoardDir = filepath.Join(home, ".board-home")
	}

	err = os.MkdirAll(HomeBoardDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit("Couldn't create board home dir: %v", err.Error())
	}

	HomeSessionPath = filepath.Join(HomeBoardDir, "session.json")
	HomeLogPath = filepath.Join(HomeBoardDir, "board.log")
}
