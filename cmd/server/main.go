package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files into the environment

	"github.com/ammowing/lawncare-api/internal/config"   // Internal config loader
	"github.com/ammowing/lawncare-api/internal/database" // MySQL connection pool
	"github.com/ammowing/lawncare-api/internal/notify"   // SMTP mailer consuming the outbox
	"github.com/ammowing/lawncare-api/internal/queue"    // RabbitMQ email outbox
	"github.com/ammowing/lawncare-api/internal/router"   // Route registration
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg) // Open MySQL pool and verify connectivity
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	rdb := config.NewRedisClient() // Optional: rate limiting and response cache degrade without it
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	outbox := queue.NewPublisher(cfg.AMQPURL)                   // Email events out
	go queue.StartEmailConsumer(cfg.AMQPURL, notify.NewMailer(cfg)) // Email delivery in the background

	e := router.New(cfg, db, rdb, outbox) // Build Echo with all routes registered

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
