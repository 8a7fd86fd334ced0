package booking

type Status string

const (
	// StatusOpen allows services and discounts to still be added.
	StatusOpen Status = "open"
	// StatusFinalized freezes the booking once its room is checked in.
	StatusFinalized Status = "finalized"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusFinalized:
		return true
	default:
		return false
	}
}
