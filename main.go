package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rchau/learnloop/cmd"
)

func main() {
	// Optional .env for API keys and DB overrides; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
