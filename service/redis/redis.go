package redis

import (
	"errors"
	"time"

	"github.com/auctionx/goapi/base/ctx"
)

const (
	// Forever is used as the expire argument when the key should not expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: not found")
)

// Service is a thin wrapper over a redigo pool with metrics attached
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, key string) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, increment int) (int64, error)
	TTL(context ctx.Ctx, key string) (int, error)
}
