package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// Store redis-хранилище черновиков бронирования
// Черновик принадлежит одной сессии клиента и живет ограниченное время:
// брошенный мастер бронирования исчезает по TTL без явной очистки
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище черновиков с указанным TTL
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get возвращает черновик по ID
func (s *Store) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	val, err := s.client.Get(ctx, draftKey(draftID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrStore, err)
	}

	var draft domain.Draft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal draft: %v", ErrStore, err)
	}

	return &draft, nil
}

// Save сохраняет черновик, продлевая его TTL
// Каждое применение шага мастера проходит через Save
func (s *Store) Save(ctx context.Context, draft *domain.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal draft: %v", ErrStore, err)
	}

	if err := s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set: %v", ErrStore, err)
	}

	return nil
}

// Delete удаляет черновик
func (s *Store) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, draftKey(draftID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStore, err)
	}
	return nil
}

func draftKey(draftID string) string {
	return "booking_draft:" + draftID
}
