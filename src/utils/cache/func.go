package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Get retrieves a value by key
// If the key doesn't exist, it returns "" and false
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	val, found, err := c.backend.get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, found, nil
}

// GetJSON retrieves a JSON value by key and unmarshals it into dest
// If the key doesn't exist, dest is untouched and false is returned
func (c *Client) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, found, err := c.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}
	return true, nil
}

// Set stores a value with the given key and no expiry
func (c *Client) Set(ctx context.Context, key string, value string) error {
	return c.SetWithExpiry(ctx, key, value, 0)
}

// SetJSON stores a JSON value with the given key and no expiry
func (c *Client) SetJSON(ctx context.Context, key string, value any) error {
	return c.SetJSONWithExpiry(ctx, key, value, 0)
}

// SetWithExpiry stores a value with the given key and expiration time
func (c *Client) SetWithExpiry(ctx context.Context, key string, value string, expiry time.Duration) error {
	if err := c.backend.set(ctx, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set key %s with expiry: %w", key, err)
	}
	return nil
}

// SetJSONWithExpiry stores a JSON value with the given key and expiration time
func (c *Client) SetJSONWithExpiry(ctx context.Context, key string, value any, expiry time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	return c.SetWithExpiry(ctx, key, string(jsonData), expiry)
}
