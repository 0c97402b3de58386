package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrow/entities"
	apperr "agrow/pkg/errors"
	"agrow/pkg/store/repositoryImp"
	storesvc "agrow/pkg/store/serviceImp"
)

func TestList_SeedsOnce(t *testing.T) {
	mem := repositoryImp.NewMemory(nil)
	svc := New(storesvc.New(mem))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, "Organic Neem Oil", first[0].Name)
	assert.InDelta(t, 1200, first[3].Price, 0)
	assert.Equal(t, 1, mem.Saves())

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Saves())
}

func TestList_KeepsExistingCatalog(t *testing.T) {
	mem := repositoryImp.NewMemory(&entities.Snapshot{Products: []entities.Product{{ID: "x", Name: "Compost"}}})
	svc := New(storesvc.New(mem))

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Compost", out[0].Name)
	assert.Zero(t, mem.Saves())
}

func TestFind(t *testing.T) {
	svc := New(storesvc.New(repositoryImp.NewMemory(nil)))

	p, ok, err := svc.Find(context.Background(), "p2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "High-Nitrogen Urea", p.Name)

	_, ok, err = svc.Find(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList_StoreFailure(t *testing.T) {
	mem := repositoryImp.NewMemory(nil)
	mem.LoadErr = errors.New("unreadable")

	_, err := New(storesvc.New(mem)).List(context.Background())
	assert.True(t, apperr.Is(err, apperr.ErrPersistence))
}
