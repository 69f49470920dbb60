package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	buyerapp "github.com/krishsharda/Buyer-Leads/application/buyer"
	userapp "github.com/krishsharda/Buyer-Leads/application/user"
	"github.com/krishsharda/Buyer-Leads/cmd/config"
	redisclient "github.com/krishsharda/Buyer-Leads/cmd/redis"
	_ "github.com/krishsharda/Buyer-Leads/docs"
	buyerRepo "github.com/krishsharda/Buyer-Leads/repository/buyer"
	historyRepo "github.com/krishsharda/Buyer-Leads/repository/history"
	redisRepo "github.com/krishsharda/Buyer-Leads/repository/redis"
	txRepo "github.com/krishsharda/Buyer-Leads/repository/tx"
	userRepo "github.com/krishsharda/Buyer-Leads/repository/user"
	"github.com/krishsharda/Buyer-Leads/thirdparty/rabbitmq"
	"github.com/krishsharda/Buyer-Leads/transport"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	validatorx "github.com/krishsharda/Buyer-Leads/utils/validator"
	"go.uber.org/zap"
)

// @title BUYER LEADS API
// @version 1.0
// @description Buyer lead intake, tracking and audit
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("normalize_policy", cfg.Buyer.NormalizePolicy))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Buyer events are optional; without a broker nothing is published
	var publisher buyerapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	TxRepo := txRepo.NewTxRepository(db)
	BuyerRepo := buyerRepo.NewBuyerRepository(db)
	HistoryRepo := historyRepo.NewHistoryRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	BuyerApp := buyerapp.NewBuyerApp(cfg, TxRepo, BuyerRepo, HistoryRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, BuyerApp,
		transport.HealthCheck{Name: "mysql", Ping: func(ctx context.Context) error { return db.PingContext(ctx) }},
		transport.HealthCheck{Name: "redis", Ping: redisclient.Ping},
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
