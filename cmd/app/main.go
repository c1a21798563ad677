package main

import (
	"PhysiqueGolang/internal/config"
	"PhysiqueGolang/pkg/capture"
	"PhysiqueGolang/pkg/landmarks"
	"PhysiqueGolang/pkg/log"
	"PhysiqueGolang/pkg/redis"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	landmarkSource := landmarks.NewPoseClient()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithLandmarkSource(landmarkSource),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithGeminiClient(),
		config.WithCaptureConfig(capture.ConfigFromEnv()),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
