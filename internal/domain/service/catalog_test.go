//go:build unit

package service_test

import (
	"testing"

	"hotel-console/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPrices(t *testing.T) {
	catalog := service.NewCatalog()

	cases := []struct {
		kind          service.Kind
		expectedUnits float64
	}{
		{service.KindBreakfast, 300},
		{service.KindLunch, 500},
		{service.KindDinner, 400},
		{service.KindFullMeal, 1020},
		{service.KindSauna, 650},
		{service.KindPool, 700},
		{service.KindBathAccessories, 340},
		{service.KindLaundry, 1200},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			price, err := catalog.Price(c.kind)
			require.NoError(t, err)
			assert.Equal(t, c.expectedUnits, price.Units())
		})
	}
}

func TestFullMealBundle(t *testing.T) {
	catalog := service.NewCatalog()

	// The bundle is the discounted sum of the three meals, never their
	// undiscounted 1200.
	price, err := catalog.Price(service.KindFullMeal)
	require.NoError(t, err)
	assert.Equal(t, int64(102000), price.Cents())
}

func TestCatalogUnknownKind(t *testing.T) {
	catalog := service.NewCatalog()

	_, err := catalog.Price(service.Kind("massage"))
	require.ErrorIs(t, err, service.ErrUnknownKind)
}

func TestKindFromCode(t *testing.T) {
	cases := []struct {
		name string
		code int
		kind service.Kind
		ok   bool
	}{
		{"first code", 1, service.KindBreakfast, true},
		{"bundle code", 4, service.KindFullMeal, true},
		{"last code", 8, service.KindLaundry, true},
		{"zero is a terminator, not a service", 0, "", false},
		{"out of range", 9, "", false},
		{"way out of range", 99, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, err := service.KindFromCode(c.code)
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.kind, kind)
				assert.True(t, kind.IsValid())
			} else {
				require.ErrorIs(t, err, service.ErrUnknownKind)
			}
		})
	}
}
