package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/alvinthemax/hedera-wallet/internal/command"
	"github.com/alvinthemax/hedera-wallet/internal/config"
	"github.com/alvinthemax/hedera-wallet/internal/events"
	"github.com/alvinthemax/hedera-wallet/internal/handler"
	"github.com/alvinthemax/hedera-wallet/internal/ledger"
	"github.com/alvinthemax/hedera-wallet/internal/middleware"
	"github.com/alvinthemax/hedera-wallet/internal/query"
	"github.com/alvinthemax/hedera-wallet/internal/repository"
)

// walletQueries joins the balance and status read services behind the
// handler's querier interface.
type walletQueries struct {
	*query.BalanceQueryService
	*query.StatusQueryService
}

func main() {
	cfg := config.Load()

	ledgerClient := ledger.NewHederaClient(cfg.Network, cfg.OperatorID, cfg.OperatorKey)
	defer ledgerClient.Close()
	log.Printf("Ledger client initialized for %s", ledgerClient.Network())

	// Redis is optional: without it transfers lose replay protection and
	// lifecycle events, nothing else.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: Redis not reachable, continuing without it: %v", err)
			redisClient = nil
		}
		cancel()
		if redisClient != nil {
			defer redisClient.Close()
		}
	}

	publisher := events.NewPublisher(redisClient)

	var reserver command.Reserver
	if redisClient != nil {
		reserver = repository.NewIdempotencyRepository(redisClient)
	}

	commandSvc := command.NewTransferCommandService(ledgerClient, reserver, publisher)
	queries := walletQueries{
		BalanceQueryService: query.NewBalanceQueryService(ledgerClient),
		StatusQueryService:  query.NewStatusQueryService(ledgerClient),
	}

	walletHandler := handler.NewWalletHandler(commandSvc, queries, cfg.Development())

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "network": ledgerClient.Network()})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/wallet/balance", walletHandler.CheckBalance)
		v1.POST("/wallet/transfers", walletHandler.SendTransfer)
		v1.POST("/wallet/fees/estimate", walletHandler.EstimateFee)
		v1.GET("/transactions/:transactionId", walletHandler.GetTransactionStatus)
		v1.GET("/accounts/:accountId", walletHandler.GetAccount)
		v1.GET("/accounts/:accountId/validation", walletHandler.ValidateAccount)
	}

	log.Printf("Wallet service starting on port %s (%s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
