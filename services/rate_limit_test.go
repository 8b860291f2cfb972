package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/shared"
)

func newRateLimitTestApp(svc *RateLimitService, userID string) *fiber.App {
	app := fiber.New()
	app.Post("/chat", func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(shared.UserID, userID)
		}
		return c.Next()
	}, svc.Limit("chat", 1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestLimitFailsOpenWhenRedisDown(t *testing.T) {
	svc := &RateLimitService{redis: &RedisService{
		redis: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			ReadTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		}),
	}}
	app := newRateLimitTestApp(svc, "user-1")

	// Unreachable redis must never block requests, even past the limit.
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/chat", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestLimitSkipsAnonymousRequests(t *testing.T) {
	svc := &RateLimitService{redis: &RedisService{}}
	app := newRateLimitTestApp(svc, "")

	resp, err := app.Test(httptest.NewRequest("POST", "/chat", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
