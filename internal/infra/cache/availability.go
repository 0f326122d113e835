package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

const availabilityKeyPrefix = "availability:scope:"

// AvailabilityCache кэш объединенного расписания занятых слотов в Redis
// Кэш короткоживущий и инвалидируется при создании бронирования и изменении
// дополнительных слотов; ошибки Redis не фатальны - вызывающий идет в БД
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache создает кэш доступности с указанным TTL
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Get возвращает закэшированное расписание для горизонта в месяцах
// Второй результат false при промахе или ошибке Redis
func (c *AvailabilityCache) Get(ctx context.Context, scopeMonths int) ([]domain.BookedDay, bool) {
	if c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, availabilityKey(scopeMonths)).Result()
	if err != nil {
		return nil, false
	}

	var days []domain.BookedDay
	if err := json.Unmarshal([]byte(val), &days); err != nil {
		return nil, false
	}

	return days, true
}

// Set кэширует расписание для горизонта в месяцах
func (c *AvailabilityCache) Set(ctx context.Context, scopeMonths int, days []domain.BookedDay) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("cache: marshal booked days: %w", err)
	}

	if err := c.client.Set(ctx, availabilityKey(scopeMonths), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set availability: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кэш всех горизонтов
// Вызывается после создания бронирования и изменения дополнительных слотов
func (c *AvailabilityCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, availabilityKeyPrefix+"*", 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: scan availability keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: invalidate availability: %w", err)
	}

	return nil
}

func availabilityKey(scopeMonths int) string {
	return fmt.Sprintf("%s%d", availabilityKeyPrefix, scopeMonths)
}
