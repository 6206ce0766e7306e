package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"bank-portal-service/src/internal/config"
	"bank-portal-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "BANK_PORTAL_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("jwt.issuer", "bank-portal-service")
	viperConfig.SetDefault("jwt.ttl_minutes", 720)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.NewKafkaConfig(viperConfig)
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	config.Migrate(db, viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server bank-portal-service is shutting down...", "graceful", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
