package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JoWinner/car-rental/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Car detail caching
func (c *Client) SetCar(car *models.Car, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(car)
	if err != nil {
		return fmt.Errorf("failed to marshal car: %w", err)
	}

	return c.rdb.Set(ctx, "car:"+car.ID, jsonData, ttl).Err()
}

func (c *Client) GetCar(carID string) (*models.Car, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "car:"+carID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("car not cached")
		}
		return nil, fmt.Errorf("failed to get cached car: %w", err)
	}

	var car models.Car
	if err := json.Unmarshal([]byte(val), &car); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached car: %w", err)
	}

	return &car, nil
}

func (c *Client) InvalidateCar(carID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "car:"+carID).Err()
}

// Dashboard snapshot caching
func (c *Client) SetDashboard(snapshot interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard snapshot: %w", err)
	}

	return c.rdb.Set(ctx, "dashboard:latest", jsonData, ttl).Err()
}

func (c *Client) GetDashboard(dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "dashboard:latest").Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("dashboard snapshot not cached")
		}
		return fmt.Errorf("failed to get dashboard snapshot: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateDashboard() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "dashboard:latest").Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
