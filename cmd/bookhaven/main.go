package main

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/emzola/bookhaven/config"
	"github.com/emzola/bookhaven/handler"
	"github.com/emzola/bookhaven/internal/credential"
	"github.com/emzola/bookhaven/internal/jsonlog"
	"github.com/emzola/bookhaven/internal/mailer"
	"github.com/emzola/bookhaven/internal/token"
	"github.com/emzola/bookhaven/repository"
	"github.com/emzola/bookhaven/repository/mongodb"
	"github.com/emzola/bookhaven/service"
	"github.com/jellydator/ttlcache/v3"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	client, err := mongodb.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer client.Disconnect(context.Background())
	logger.PrintInfo("database connection established", nil)
	dbTimeout, err := time.ParseDuration(cfg.Database.Timeout)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	db := client.Database(cfg.Database.Name)

	// Other shared resources: waitgroup and in-memory owner cache
	var wg sync.WaitGroup
	cache := ttlcache.New(ttlcache.WithTTL[string, string](30 * time.Minute))
	go cache.Start()

	// Application layers
	repo := repository.New(db, dbTimeout)
	tokens := token.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.LifetimeHrs)*time.Hour)
	mail := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender)
	service := service.New(cfg, &wg, logger, repo, tokens, credential.Plaintext{}, mail)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
