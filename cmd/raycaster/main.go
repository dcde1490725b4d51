// Command raycaster opens a window and lets you walk around a grid level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plus3/raycaster/config"
	"github.com/plus3/raycaster/game"
	"github.com/plus3/raycaster/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, game.Run))
}

// run parses args and hands the settings to play. It returns the process
// exit status: 0 also for -h, 2 for bad arguments, 1 when play fails.
func run(args []string, stderr io.Writer, play func(config.Config, logging.Logger) error) int {
	cfg, err := config.FromArgs("raycaster", args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "Failed to load settings: %v\n", err)
		return 2
	}

	logger := logging.New("raycaster", cfg.Debug.Log)
	if err := play(cfg, logger); err != nil {
		logger.Errorf("Failed to run raycaster: %v", err)
		return 1
	}
	return 0
}
