package service

import (
	"sync"

	"github.com/emzola/bookhaven/config"
	"github.com/emzola/bookhaven/internal/credential"
	"github.com/emzola/bookhaven/internal/jsonlog"
	"github.com/emzola/bookhaven/internal/mailer"
	"github.com/emzola/bookhaven/internal/token"
	"github.com/emzola/bookhaven/repository"
)

type Service interface {
	books
	reviews
	users
}

// service defines the business-rule layer. It owns validation, uniqueness
// checks, ownership checks and the review-counter bookkeeping; persistence
// and HTTP framing are collaborators.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
	tokens *token.Service
	hasher credential.Hasher
	mailer mailer.Mailer
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, tokens *token.Service, hasher credential.Hasher, mailer mailer.Mailer) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		mailer: mailer,
	}
}
