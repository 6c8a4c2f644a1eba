package database

import (
	"context"
	"log"
	"net"
	"patient-records-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient backs the verification sessions and their locks.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s (db %d): %v", rdb.Options().Addr, driverConfig.Redis.DB, err)
	}

	log.Printf("Successfully connected to redis db %d", driverConfig.Redis.DB)
	return rdb
}
