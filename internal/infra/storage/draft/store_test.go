package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	now := time.Now()

	d := domain.NewDraft("draft-1", 42, now)
	store.Create(d)

	got, err := store.GetByID("draft-1")
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore()

	_, err := store.GetByID("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStore_SaveAfterDelete(t *testing.T) {
	store := NewStore()
	d := domain.NewDraft("draft-1", 42, time.Now())
	store.Create(d)

	require.NoError(t, store.Delete("draft-1"))
	assert.ErrorIs(t, store.Save(d), ErrDraftNotFound)
}

func TestStore_DeleteExpired(t *testing.T) {
	store := NewStore()
	now := time.Now()
	ttl := time.Hour

	stale := domain.NewDraft("stale", 1, now.Add(-2*time.Hour))
	fresh := domain.NewDraft("fresh", 2, now.Add(-10*time.Minute))
	submitting := domain.NewDraft("submitting", 3, now.Add(-2*time.Hour))
	submitting.Submitting = true

	store.Create(stale)
	store.Create(fresh)
	store.Create(submitting)

	removed := store.DeleteExpired(now, ttl)

	assert.Equal(t, 1, removed)
	_, err := store.GetByID("stale")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = store.GetByID("fresh")
	assert.NoError(t, err)

	// Черновик с идущим сабмитом зачистка не трогает
	_, err = store.GetByID("submitting")
	assert.NoError(t, err)
}
