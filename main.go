package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"merch-store-backend/app"
)

func main() {
	// Load .env in development; in production variables are set directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
		}
	}

	handler, cleanup, err := app.Initialize(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	// Listen on 0.0.0.0 to accept connections from all interfaces
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if port[0] == ':' {
		port = port[1:]
	}

	log.Printf("🚀 Backend running on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal(err)
	}
}
