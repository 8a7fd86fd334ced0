//go:build unit

package queries_test

import (
	"testing"

	"hotel-console/internal/domain/client"
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/usecase/queries"
	"hotel-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(queries.BookingView{}, "ID", "CreatedAt"),
	cmpopts.EquateEmpty(),
}

func TestNewRoomView(t *testing.T) {
	r, err := room.NewRoom("102", room.ClassDouble, pricing.FromUnits(1500))
	require.NoError(t, err)

	expected := queries.RoomView{
		Number:    "102",
		Class:     "Double Room",
		RateCents: 150000,
	}
	if diff := cmp.Diff(expected, queries.NewRoomView(r)); diff != "" {
		t.Errorf("RoomView mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBookingView(t *testing.T) {
	t.Run("anonymous booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.AddService(service.KindSauna))

		expected := queries.BookingView{
			RoomNumber:       "101",
			RoomClass:        "Single Room",
			Nights:           2,
			ServiceCostCents: 65000,
			TotalCents:       265000,
		}
		if diff := cmp.Diff(expected, queries.NewBookingView(b), cmpOpts...); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("booking with a guest carries the loyalty figures", func(t *testing.T) {
		guest, err := client.NewClient("Ann")
		require.NoError(t, err)

		b, err := builder.NewBookingBuilder().
			WithNights(20).
			WithGuest(guest).
			BuildDomain()
		require.NoError(t, err)

		name := "Ann"
		points := 1000
		expected := queries.BookingView{
			RoomNumber:   "101",
			RoomClass:    "Single Room",
			Nights:       20,
			TotalCents:   2000000,
			ClientName:   &name,
			ClientPoints: &points,
		}
		if diff := cmp.Diff(expected, queries.NewBookingView(b), cmpOpts...); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})
}
