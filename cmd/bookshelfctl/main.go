package main

import (
	"os"

	"bookshelf/backend/internal/cli"
	"bookshelf/backend/internal/logger"
)

func main() {
	logger.Init(logger.ParseLevel(os.Getenv("BOOKSHELF_LOG_LEVEL")), os.Getenv("BOOKSHELF_LOG_FORMAT"))

	if err := cli.CreateRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
