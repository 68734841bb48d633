package handlers

import (
	"context"
	"log/slog"

	"github.com/rogerio-castellano/grocery-inventory/internal/redissvc"
	repo "github.com/rogerio-castellano/grocery-inventory/internal/repo"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

var (
	productRepo repo.ProductRepository
	cache       *redissvc.RedisService
	dbPinger    Pinger
	logger      = slog.Default()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

// SetCache installs the optional listing cache. A nil cache disables caching.
func SetCache(c *redissvc.RedisService) {
	cache = c
}

func SetPinger(p Pinger) {
	dbPinger = p
}

func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
