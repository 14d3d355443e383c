package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under "<name>::<key>" with the TTL configured for name.
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a named cache. The TTL is resolved from the client config.
func NewCache(client *Client, name string) *Cache {
	return &Cache{
		client: client,
		name:   name,
		ttl:    client.GetConfig().TTLFor(name),
	}
}

func (c *Cache) buildCacheKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// TTL returns the expiration applied on Set
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// GetBytes returns the raw cached value. found is false on a miss.
func (c *Cache) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	return c.client.GetBytes(ctx, c.buildCacheKey(key))
}

// SetBytes stores a raw value
func (c *Cache) SetBytes(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.buildCacheKey(key), value, c.ttl)
}

// Get unmarshals the cached JSON value into dest. found is false on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, found, err := c.GetBytes(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize cached value: %w", err)
	}
	return true, nil
}

// Set marshals value to JSON and stores it
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.SetBytes(ctx, key, data)
}

// Delete evicts a key
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}
