package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carhive/storefront/internal/models"
)

var RedisClient *redis.Client

// SessionTTL matches the rental API token lifetime so a session never
// outlives the token it carries.
const SessionTTL = 7 * 24 * time.Hour

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// Session is the persisted client state: the rental API token and a
// snapshot of the logged-in user. The snapshot is a cache, not the
// source of truth; the API re-validates everything.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func sessionKey(id string) string {
	return "session:" + id
}

// SaveSession stores a session under the given id.
func SaveSession(ctx context.Context, id string, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, sessionKey(id), data, SessionTTL).Err()
}

// GetSession retrieves a session by id. Returns redis.Nil when the
// session is missing or expired.
func GetSession(ctx context.Context, id string) (Session, error) {
	data, err := RedisClient.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// DeleteSession removes a session on logout.
func DeleteSession(ctx context.Context, id string) error {
	return RedisClient.Del(ctx, sessionKey(id)).Err()
}

// RefreshSessionUser replaces the cached user snapshot, e.g. after a
// licence image upload changed the profile.
func RefreshSessionUser(ctx context.Context, id string, user models.User) error {
	session, err := GetSession(ctx, id)
	if err != nil {
		return err
	}
	session.User = user
	return SaveSession(ctx, id, session)
}
