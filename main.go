package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
)

func main() {
	// FORAGE_SNIPPETS_CONFIG may come from a local .env file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
