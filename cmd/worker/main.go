package main

import (
	"context"
	"encore/config"
	"encore/di"
	"encore/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	sink := logger.AttachFileSink(cfg)
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	defer func() {
		if err := worker.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client.")
		}
	}()

	if err := worker.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Booking consumer stopped.")

		return
	}

	log.Info().Msg("Worker shut down.")
}
