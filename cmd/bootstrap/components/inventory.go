package components

import (
	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/pkg/errs"
)

// seedRooms is the fixed catalog the hotel opens with. Rates are whole
// currency units per night.
func seedRooms() ([]*room.Room, error) {
	seed := []struct {
		number string
		class  room.Class
		rate   int64
	}{
		{"101", room.ClassSingle, 1000},
		{"102", room.ClassDouble, 1500},
		{"201", room.ClassSuite, 3000},
		{"202", room.ClassSuite, 3200},
		{"301", room.ClassSingle, 1100},
		{"302", room.ClassDouble, 1600},
		{"303", room.ClassSuite, 3500},
		{"401", room.ClassSingle, 1200},
		{"402", room.ClassDouble, 1700},
		{"403", room.ClassSuite, 3800},
		{"501", room.ClassSingle, 1300},
		{"502", room.ClassDouble, 1800},
		{"503", room.ClassSuite, 4000},
	}

	rooms := make([]*room.Room, 0, len(seed))
	for _, s := range seed {
		r, err := room.NewRoom(s.number, s.class, pricing.FromUnits(s.rate))
		if err != nil {
			return nil, errs.Wrap(err, "seed room catalog")
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}
