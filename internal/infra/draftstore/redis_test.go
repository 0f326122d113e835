package draftstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, time.Hour), mr
}

func TestStoreSaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	draft := domain.NewDraft("draft-1", time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC))
	draft.SetOwnerPhone("010-1234-5678")
	draft.SetPet(domain.DraftPet{Name: "Bori", Weight: 5.0, BreedType: domain.BreedTypeDefault})

	require.NoError(t, store.Save(ctx, draft))

	loaded, err := store.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, domain.StepDateTime, loaded.Step)
	assert.Equal(t, "010-1234-5678", loaded.OwnerPhone)
	require.NotNil(t, loaded.Pet)
	assert.Equal(t, "Bori", loaded.Pet.Name)
}

func TestStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	draft := domain.NewDraft("draft-1", time.Now())
	require.NoError(t, store.Save(ctx, draft))
	require.NoError(t, store.Delete(ctx, "draft-1"))

	_, err := store.Get(ctx, "draft-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStoreDraftExpiresByTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	draft := domain.NewDraft("draft-1", time.Now())
	require.NoError(t, store.Save(ctx, draft))

	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "draft-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStoreSaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	draft := domain.NewDraft("draft-1", time.Now())
	require.NoError(t, store.Save(ctx, draft))

	mr.FastForward(50 * time.Minute)
	require.NoError(t, store.Save(ctx, draft))
	mr.FastForward(50 * time.Minute)

	_, err := store.Get(ctx, "draft-1")
	assert.NoError(t, err)
}
