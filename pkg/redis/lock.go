package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld is returned by TryLock when another owner holds the lock.
var ErrLockHeld = errors.New("lock is held by another owner")

const releaseScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock is a SETNX based lock owned by a random token.
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock under "<namespace>::<key>".
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	fullKey := key
	if namespace != "" {
		fullKey = namespace + "::" + key
	}
	return &Lock{
		client: client,
		key:    fullKey,
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock makes a single acquisition attempt.
func (l *Lock) TryLock(ctx context.Context) error {
	ok, err := l.client.SetNX(ctx, l.key, l.value, l.ttl)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return ErrLockHeld
	}
	return nil
}

// Unlock releases the lock if this owner still holds it.
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n, ok := result.(int64); ok && n == 0 {
		return fmt.Errorf("lock %s was not held by this owner", l.key)
	}
	return nil
}
