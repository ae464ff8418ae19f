// README: Contact-query service tests against an in-memory store.
package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	queries map[string]*Query
}

func newMemStore() *memStore {
	return &memStore{queries: make(map[string]*Query)}
}

func (m *memStore) Insert(ctx context.Context, q *Query) error {
	cp := *q
	m.queries[q.ID] = &cp
	return nil
}

func (m *memStore) List(ctx context.Context) ([]Query, error) {
	out := make([]Query, 0, len(m.queries))
	for _, q := range m.queries {
		out = append(out, *q)
	}
	return out, nil
}

func (m *memStore) SetRead(ctx context.Context, id string, read bool) (bool, error) {
	q, ok := m.queries[id]
	if !ok {
		return false, nil
	}
	q.Read = read
	return true, nil
}

func (m *memStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.queries[id]; !ok {
		return false, nil
	}
	delete(m.queries, id)
	return true, nil
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(newMemStore(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "", "a@b.c", "99", "hello")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, "Asha", "", "99", "hello")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(ctx, "Asha", "a@b.c", "99", "")
	assert.ErrorIs(t, err, ErrValidation)

	// Phone is optional on the contact form.
	q, err := svc.Submit(ctx, "Asha", "a@b.c", "", "need a cab next week")
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.False(t, q.Read)
}

func TestReadLifecycle(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, zap.NewNop())
	ctx := context.Background()

	q, err := svc.Submit(ctx, "Asha", "a@b.c", "99", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.SetRead(ctx, q.ID, true))
	assert.True(t, store.queries[q.ID].Read)
	require.NoError(t, svc.SetRead(ctx, q.ID, false))
	assert.False(t, store.queries[q.ID].Read)

	assert.ErrorIs(t, svc.SetRead(ctx, "nope", true), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, q.ID))
	assert.ErrorIs(t, svc.Delete(ctx, q.ID), ErrNotFound)
}
