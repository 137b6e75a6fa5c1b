package config

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown() {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}
	// Sync flushes buffered entries; stdout sync errors are harmless.
	_ = b.Logger.Sync()
}
