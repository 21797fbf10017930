package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the redis surface the repositories use
type Client interface {
	redis.UniversalClient
}

