package queries

import (
	"context"

	"hotel-console/internal/domain/room"
)

// RoomReader is the read side of the room store.
type RoomReader interface {
	ListAvailable() []*room.Room
	ListOccupied() []*room.Room
	IsAvailable(number string) bool
	OccupancyRate() float64
}

type RoomQueries interface {
	AvailableRooms(ctx context.Context) ([]RoomView, error)
	OccupiedRooms(ctx context.Context) ([]RoomView, error)
	IsRoomAvailable(ctx context.Context, number string) (bool, error)
	OccupancyRate(ctx context.Context) (float64, error)
}

type roomQueriesImpl struct {
	reader RoomReader
}

func NewRoomQueries(reader RoomReader) RoomQueries {
	return &roomQueriesImpl{reader: reader}
}

func (q *roomQueriesImpl) AvailableRooms(_ context.Context) ([]RoomView, error) {
	return NewRoomViews(q.reader.ListAvailable()), nil
}

func (q *roomQueriesImpl) OccupiedRooms(_ context.Context) ([]RoomView, error) {
	return NewRoomViews(q.reader.ListOccupied()), nil
}

func (q *roomQueriesImpl) IsRoomAvailable(_ context.Context, number string) (bool, error) {
	return q.reader.IsAvailable(number), nil
}

func (q *roomQueriesImpl) OccupancyRate(_ context.Context) (float64, error) {
	return q.reader.OccupancyRate(), nil
}
