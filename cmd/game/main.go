package main

import (
	"fmt"
	"os"

	"github.com/tatianab/escape-room/internal/config"
	"github.com/tatianab/escape-room/internal/logging"
	"github.com/tatianab/escape-room/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := tui.Run(log, cfg.AltScreen); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
