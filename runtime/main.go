package main

import (
	"os"

	"github.com/avanee-labs/guarani_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title Guarani Learning API
// @version 1.0
// @description REST API for Guarani language learning: glossary, lessons, exercises, progress and tutor chat.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	ctx, err := context.NewCtx(
		&services.MonitoringService{},
		&services.PostgresService{},
		&services.RedisService{},
		&services.MinIOService{},

		&services.JWTService{},
		&services.AuthService{},
		&services.RateLimitService{},

		&services.CompletionService{},
		&services.ContentService{},
		&services.ExerciseService{},
		&services.ProgressService{},
		&services.ChatService{},
		&services.MediaService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
