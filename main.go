// @title MindHaven
// @version 0.1
// @description Wellness app backend: community chat rooms, profiles and the support chatbot.

// @host localhost:8080
// @BasePath /api
// @query.collection.format multi
// @schemes http

package main

import (
	"log"

	_ "mindhaven/docs"
	"mindhaven/internal/app"
	"mindhaven/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
