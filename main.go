package main

import (
	"log"
	"os"

	"github.com/avstrong/resortrates/internal/cli"
	"github.com/avstrong/resortrates/internal/logger"
)

func main() {
	l := logger.New(log.Default())

	var exitCode int

	if err := cli.Execute(l); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}
