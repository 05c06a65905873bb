// Copyright (c) 2026 YaMDB. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yamdb/yamdb/internal/platform/constants"
)

// RedisCooldownRepository implements CooldownRepository using Redis.
type RedisCooldownRepository struct {
	client *redis.Client
}

// NewCooldownRepository creates a new Redis-backed CooldownRepository.
func NewCooldownRepository(client *redis.Client) *RedisCooldownRepository {
	return &RedisCooldownRepository{client: client}
}

/*
Acquire attempts to take the send slot for the given email address.

Description: Uses SET NX so the first caller inside the window wins and
every other caller is throttled until the key expires.

Parameters:
  - context: context.Context
  - email: string
  - ttl: time.Duration

Returns:
  - bool: true if the caller may send an email now
  - error: Connectivity failures
*/
func (repository *RedisCooldownRepository) Acquire(context context.Context, email string, ttl time.Duration) (bool, error) {
	key := constants.RedisPrefixSignupCooldown + email

	acquired, err := repository.client.SetNX(context, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis_signup_cooldown_failed: %w", err)
	}

	return acquired, nil
}
