package main

import (
	"log"

	"github.com/tynanfleet/fleetcheck/internal/checklist/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
