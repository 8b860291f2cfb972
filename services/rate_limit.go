package services

import (
	"fmt"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/avanee-labs/guarani_api/shared"
)

// RateLimitService enforces fixed-window per-user limits backed by
// redis. If redis is down the limiter fails open.
type RateLimitService struct {
	appContext.DefaultService
	redis *RedisService
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Start() error {
	svc.redis = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Limit returns middleware allowing max requests per window for the
// authenticated user on the given endpoint.
func (svc *RateLimitService) Limit(endpoint string, max int64, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := UserID(c)
		if userID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", endpoint, userID)
		ctx := c.UserContext()

		count, err := svc.redis.Increment(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Rate limit check failed, allowing request")
			return c.Next()
		}

		if count == 1 {
			if err := svc.redis.Expire(ctx, key, window); err != nil {
				log.WithError(err).Warn("Failed to set rate limit window")
			}
		}

		if count > max {
			return shared.NewAppError(fiber.StatusTooManyRequests, fmt.Errorf("rate limit exceeded for %s", endpoint), "Too Many Requests")
		}

		return c.Next()
	}
}
