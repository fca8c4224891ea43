package fulfillment

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuoteLease guarantees at most one in-flight fulfillment per quote id.
// Concurrent fulfillment of different quotes is fine; the same quote must
// never run twice at once.
type QuoteLease interface {
	Acquire(ctx context.Context, quoteID string) (bool, error)
	Release(ctx context.Context, quoteID string) error
}

// RedisQuoteLease implements QuoteLease with SETNX and a TTL so a crashed
// run cannot wedge a quote forever.
type RedisQuoteLease struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisQuoteLease returns a lease store on the given client.
func NewRedisQuoteLease(client *redis.Client, ttl time.Duration) *RedisQuoteLease {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisQuoteLease{Client: client, TTL: ttl}
}

func leaseKey(quoteID string) string {
	return "fulfill:lease:" + quoteID
}

func (l *RedisQuoteLease) Acquire(ctx context.Context, quoteID string) (bool, error) {
	return l.Client.SetNX(ctx, leaseKey(quoteID), "1", l.TTL).Result()
}

func (l *RedisQuoteLease) Release(ctx context.Context, quoteID string) error {
	return l.Client.Del(ctx, leaseKey(quoteID)).Err()
}

// MemoryQuoteLease is a process-local QuoteLease for tests and single-node
// setups.
type MemoryQuoteLease struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewMemoryQuoteLease returns an empty in-process lease store.
func NewMemoryQuoteLease() *MemoryQuoteLease {
	return &MemoryQuoteLease{held: make(map[string]bool)}
}

func (l *MemoryQuoteLease) Acquire(_ context.Context, quoteID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[quoteID] {
		return false, nil
	}
	l.held[quoteID] = true
	return true, nil
}

func (l *MemoryQuoteLease) Release(_ context.Context, quoteID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, quoteID)
	return nil
}
