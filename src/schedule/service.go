package schedule

import (
	"context"
	"time"

	"github.com/yashkumarverma/cronparser/src/expander"
	"github.com/yashkumarverma/cronparser/src/utils"
)

// Cache stores expanded records between invocations
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSONWithExpiry(ctx context.Context, key string, value any, expiry time.Duration) error
}

// Service expands cron lines, consulting the cache first when one is set
type Service struct {
	expander *expander.Expander
	cache    Cache
	ttl      time.Duration
}

// NewService creates a service. A nil cache disables caching.
func NewService(exp *expander.Expander, cache Cache, ttl time.Duration) *Service {
	return &Service{
		expander: exp,
		cache:    cache,
		ttl:      ttl,
	}
}

// Parse expands fields. Cache failures are logged and never fail the call;
// expansion errors are returned unchanged.
func (s *Service) Parse(ctx context.Context, fields expander.Fields) (*Record, error) {
	logger := utils.LoggerFromCtx(ctx)
	key := CacheKey(fields, s.expander.Strict())

	if s.cache != nil {
		var cached Record
		found, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warnw("Failed to read schedule from cache", "key", key, "error", err)
		} else if found && cached.Schedule != nil {
			logger.Debugw("Schedule served from cache", "key", key, "record_id", cached.ID)
			return &cached, nil
		}
	}

	schedule, err := s.expander.Expand(fields)
	if err != nil {
		logger.Debugw("Failed to expand schedule", "error", err)
		return nil, err
	}
	record := NewRecord(fields, s.expander.Strict(), schedule)
	logger.Debugw("Schedule expanded", "record_id", record.ID)

	if s.cache != nil {
		if err := s.cache.SetJSONWithExpiry(ctx, key, record, s.ttl); err != nil {
			logger.Warnw("Failed to store schedule in cache", "key", key, "error", err)
		}
	}
	return record, nil
}
