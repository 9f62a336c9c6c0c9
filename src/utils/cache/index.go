package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/valkey-io/valkey-go"
	"github.com/yashkumarverma/cronparser/src/utils"
)

// ErrUnsupportedScheme is returned for a CACHE_URL_SCHEME other than redis or valkey
var ErrUnsupportedScheme = errors.New("unsupported cache scheme")

// backend is the minimal string store the client needs
type backend interface {
	get(ctx context.Context, key string) (string, bool, error)
	set(ctx context.Context, key, value string, expiry time.Duration) error
	ping(ctx context.Context) error
	close() error
}

type Client struct {
	backend backend
}

func (c *Client) Ping(ctx context.Context) error {
	return c.backend.ping(ctx)
}

func (c *Client) Close() error {
	return c.backend.close()
}

// NewClient connects to the cache selected by config.CacheURLScheme
func NewClient(ctx context.Context, config *utils.Config) (*Client, error) {
	var tlsConfig *tls.Config
	if config.CacheTLSDomain != "" {
		tlsConfig = &tls.Config{ServerName: config.CacheTLSDomain}
	}

	var (
		b   backend
		err error
	)
	switch config.CacheURLScheme {
	case "redis", "rediss":
		b = newRedisBackend(config, tlsConfig)
	case "valkey", "valkeys":
		b, err = newValkeyBackend(config, tlsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create Valkey client: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, config.CacheURLScheme)
	}

	// Test the connection
	if err := b.ping(ctx); err != nil {
		_ = b.close()
		return nil, fmt.Errorf("failed to connect to %s cache: %w", config.CacheURLScheme, err)
	}

	return &Client{backend: b}, nil
}

type redisBackend struct {
	client *redis.Client
}

func newRedisBackend(config *utils.Config, tlsConfig *tls.Config) *redisBackend {
	return &redisBackend{
		client: redis.NewClient(&redis.Options{
			Addr:      config.CacheAddr(),
			Password:  config.CachePassword,
			Username:  config.CacheUsername,
			DB:        config.CacheDB,
			TLSConfig: tlsConfig,
		}),
	}
}

func (r *redisBackend) get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *redisBackend) set(ctx context.Context, key, value string, expiry time.Duration) error {
	return r.client.Set(ctx, key, value, expiry).Err()
}

func (r *redisBackend) ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisBackend) close() error {
	return r.client.Close()
}

type valkeyBackend struct {
	client valkey.Client
}

func newValkeyBackend(config *utils.Config, tlsConfig *tls.Config) (*valkeyBackend, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{config.CacheAddr()},
		Username:    config.CacheUsername,
		Password:    config.CachePassword,
		SelectDB:    config.CacheDB,
		TLSConfig:   tlsConfig,
	})
	if err != nil {
		return nil, err
	}
	return &valkeyBackend{client: client}, nil
}

func (v *valkeyBackend) get(ctx context.Context, key string) (string, bool, error) {
	val, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (v *valkeyBackend) set(ctx context.Context, key, value string, expiry time.Duration) error {
	if expiry <= 0 {
		return v.client.Do(ctx, v.client.B().Set().Key(key).Value(value).Build()).Error()
	}
	seconds := int64(expiry / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return v.client.Do(ctx, v.client.B().Set().Key(key).Value(value).ExSeconds(seconds).Build()).Error()
}

func (v *valkeyBackend) ping(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}

func (v *valkeyBackend) close() error {
	v.client.Close()
	return nil
}
