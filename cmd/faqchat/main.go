package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env files are fine, environment variables still apply.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("faqchat: %v", err)
	}
}
