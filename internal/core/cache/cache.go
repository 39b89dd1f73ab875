package cache

import (
	"context"
	"errors"
	"fmt"

	"flavoria/internal/infrastructure/config"
)

// ErrMiss 快取未命中
var ErrMiss = errors.New("cache miss")

// ErrFull 快取已滿且無法淘汰
var ErrFull = errors.New("cache full")

// Store 是 catalog 回應快取的共同介面
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定建立快取；停用時回傳 nil, nil
func New(cfg *config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	switch cfg.Backend {
	case config.CacheBackendMemory:
		return NewManager(cfg), nil
	case config.CacheBackendRedis:
		svc, err := NewRedisService(cfg)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
