package main

import (
	"incomebook/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for INCOMEBOOK_* overrides; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
