package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/abagency/backend/internal/server"
)

func main() {
	// Optional; production configures through real environment variables.
	_ = godotenv.Load(".env")

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
