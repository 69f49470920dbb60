package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/krishsharda/Buyer-Leads/cmd/config"
	"github.com/krishsharda/Buyer-Leads/thirdparty/rabbitmq"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

// The worker keeps the buyer cache warm by consuming buyer events.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required by the worker")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Worker.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("buyer cache worker running", zap.String("api_url", cfg.Worker.APIURL))
	<-ctx.Done()
	logger.Info("buyer cache worker stopping")
}
