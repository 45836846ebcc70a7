package main

import (
	"os"

	"robotlog/cmd/robotlog/commands"
	"robotlog/internal/logging"
)

func main() {
	if err := commands.Execute(); err != nil {
		logging.Error().Err(err).Msg("robotlog failed")
		os.Exit(1)
	}
}
