//go:build unit

package memstore_test

import (
	"testing"

	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	ledger := memstore.NewClientLedger()

	t.Run("empty name is the anonymous path", func(t *testing.T) {
		c, err := ledger.GetOrCreate("")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("creates on first sight, returns the same record after", func(t *testing.T) {
		first, err := ledger.GetOrCreate("Ann")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, 0, first.Points())

		first.AccruePoints(pricing.FromUnits(100))

		second, err := ledger.GetOrCreate("Ann")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 5, second.Points())
	})

	t.Run("names are case-sensitive with no normalization", func(t *testing.T) {
		upper, err := ledger.GetOrCreate("Bob")
		require.NoError(t, err)
		lower, err := ledger.GetOrCreate("bob")
		require.NoError(t, err)
		assert.NotSame(t, upper, lower)
	})
}

func TestFind(t *testing.T) {
	ledger := memstore.NewClientLedger()

	_, ok := ledger.Find("Ann")
	assert.False(t, ok)

	created, err := ledger.GetOrCreate("Ann")
	require.NoError(t, err)

	found, ok := ledger.Find("Ann")
	assert.True(t, ok)
	assert.Same(t, created, found)
}
