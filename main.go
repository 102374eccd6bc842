package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"renegade-swap/cmd"
)

func main() {
	// A .env file is optional; credentials may come from the environment or
	// the config file
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
