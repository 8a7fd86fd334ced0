package room

import (
	"errors"

	"hotel-console/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber  = errors.New("room number cannot be empty")
	ErrInvalidClass = errors.New("invalid room class")
)

type Class string

const (
	ClassSingle Class = "Single Room"
	ClassDouble Class = "Double Room"
	ClassSuite  Class = "Suite"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassSingle, ClassDouble, ClassSuite:
		return true
	default:
		return false
	}
}

// Room is a catalog entry. The number is the public key guests see; the
// nightly rate is fixed at inventory initialization and never changes.
type Room struct {
	id          uuid.UUID
	number      string
	class       Class
	nightlyRate pricing.Money
}

func NewRoom(number string, class Class, nightlyRate pricing.Money) (*Room, error) {
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if !class.IsValid() {
		return nil, ErrInvalidClass
	}

	return &Room{
		id:          uuid.New(),
		number:      number,
		class:       class,
		nightlyRate: nightlyRate,
	}, nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Number() string             { return r.number }
func (r *Room) Class() Class               { return r.class }
func (r *Room) NightlyRate() pricing.Money { return r.nightlyRate }
