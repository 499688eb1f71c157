package driver

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes a connection pool. It applies to pgxpool and to database/sql pools.
type PoolConfig struct {
	MaxConns              int32
	MinConns              int32
	MaxConnLifetime       time.Duration
	MaxConnIdleTime       time.Duration
	HealthCheckPeriod     time.Duration
	MaxConnLifetimeJitter time.Duration
}

func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxConns:              25,
		MinConns:              5,
		MaxConnLifetime:       30 * time.Minute,
		MaxConnIdleTime:       5 * time.Minute,
		HealthCheckPeriod:     time.Minute,
		MaxConnLifetimeJitter: 30 * time.Second,
	}
}

// ConfigurePgxPool copies poolConfig onto config. A nil poolConfig applies the defaults.
func ConfigurePgxPool(config *pgxpool.Config, poolConfig *PoolConfig) {
	if poolConfig == nil {
		poolConfig = DefaultPoolConfig()
	}
	config.MaxConns = poolConfig.MaxConns
	config.MinConns = poolConfig.MinConns
	config.MaxConnLifetime = poolConfig.MaxConnLifetime
	config.MaxConnIdleTime = poolConfig.MaxConnIdleTime
	config.HealthCheckPeriod = poolConfig.HealthCheckPeriod
	config.MaxConnLifetimeJitter = poolConfig.MaxConnLifetimeJitter
}

func NewPgxPoolWithConfig(ctx context.Context, databaseURL string, poolConfig *PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	ConfigurePgxPool(config, poolConfig)
	return pgxpool.NewWithConfig(ctx, config)
}
