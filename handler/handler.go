package handler

import (
	"github.com/emzola/bookhaven/config"
	"github.com/emzola/bookhaven/internal/jsonlog"
	"github.com/emzola/bookhaven/service"
	"github.com/jellydator/ttlcache/v3"
)

// Handler defines Handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, string]
	service service.Service
}

// New creates a new instance of Handler. The cache maps book IDs to their
// owner's user ID for the ownership middleware.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, string], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
