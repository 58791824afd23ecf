package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the most recent probe result for the external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

const healthProbeTimeout = 5 * time.Second

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// probeAndRecord pings both services once and stores the snapshot.
func probeAndRecord(redisClient *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
	defer cancel()

	status := HealthStatus{
		Redis:     redisClient.Ping(ctx).Err() == nil,
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		CheckedAt: time.Now(),
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor probes both services once at startup and then every
// minute, updating the in-memory snapshot.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		probeAndRecord(redisClient, mongoClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probeAndRecord(redisClient, mongoClient)
		}
	}()
}
