package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/adapters/memory"
	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunPatternStoreContract(t, memory.NewStore())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				id, err := store.Save(ctx, &domain.Pattern{ID: "kolam-3x3", Name: "Kolam 3×3"})
				assert.NoError(t, err)

				_, err = store.Load(ctx, id)
				assert.NoError(t, err)

				_, err = store.List(ctx)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 160)
}
