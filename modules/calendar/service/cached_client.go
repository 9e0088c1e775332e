package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeslotfinder/core/cache"
	"timeslotfinder/core/constants"
	"timeslotfinder/core/logger"
	"timeslotfinder/modules/slots/entity"
)

// CachedCalendarClient wraps a CalendarClient with a Redis cache so
// repeated lookups within the TTL skip the upstream call.
type CachedCalendarClient struct {
	inner CalendarClient
	cache cache.Cache
}

// CalendarClient matches the consumer-side interface in the slots module
type CalendarClient interface {
	GetSchedule(ctx context.Context, emails []string, start, end time.Time, timezone string) (map[string][]entity.TimeRange, error)
}

func NewCachedCalendarClient(inner CalendarClient, c cache.Cache) *CachedCalendarClient {
	return &CachedCalendarClient{inner: inner, cache: c}
}

func (c *CachedCalendarClient) GetSchedule(ctx context.Context, emails []string, start, end time.Time, timezone string) (map[string][]entity.TimeRange, error) {
	key := scheduleCacheKey(emails, start, end, timezone)

	var cached map[string][]entity.TimeRange
	err := c.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		logger.Debug("CachedCalendarClient:Hit", "key", key)
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("CachedCalendarClient:GetFailed", "key", key, "error", err)
	}

	schedule, err := c.inner.GetSchedule(ctx, emails, start, end, timezone)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, schedule, constants.ScheduleCacheTTL); err != nil {
		logger.Warn("CachedCalendarClient:SetFailed", "key", key, "error", err)
	}
	return schedule, nil
}

func scheduleCacheKey(emails []string, start, end time.Time, timezone string) string {
	raw := strings.Join(emails, ",") + "|" +
		start.UTC().Format(time.RFC3339) + "|" +
		end.UTC().Format(time.RFC3339) + "|" + timezone
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf(constants.RedisKeyScheduleFmt, hex.EncodeToString(sum[:16]))
}
