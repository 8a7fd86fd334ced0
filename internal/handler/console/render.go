package console

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/queries"
)

func (h *Handler) renderRooms(rooms []queries.RoomView) {
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROOM\tCLASS\tRATE/NIGHT")
	for _, r := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Number, r.Class, h.formatMoney(r.RateCents))
	}
	_ = w.Flush()
}

func (h *Handler) renderBooking(b queries.BookingView) {
	fmt.Fprintf(h.out, "\nRoom %s (%s)\n", b.RoomNumber, b.RoomClass)
	fmt.Fprintf(h.out, "Nights: %d\n", b.Nights)
	fmt.Fprintf(h.out, "Services: %s\n", h.formatMoney(b.ServiceCostCents))
	fmt.Fprintf(h.out, "Total: %s\n", h.formatMoney(b.TotalCents))
	if b.ClientName != nil {
		fmt.Fprintf(h.out, "Client: %s\n", *b.ClientName)
	}
	if b.ClientPoints != nil {
		fmt.Fprintf(h.out, "Loyalty points: %d\n", *b.ClientPoints)
	}
}

func (h *Handler) renderServiceMenu() {
	fmt.Fprintln(h.out, "Available services:")
	for i, kind := range service.AllKinds {
		fmt.Fprintf(h.out, " %d. %s\n", i+1, serviceLabel(kind))
	}
}

func serviceLabel(kind service.Kind) string {
	switch kind {
	case service.KindBreakfast:
		return "Breakfast"
	case service.KindLunch:
		return "Lunch"
	case service.KindDinner:
		return "Dinner"
	case service.KindFullMeal:
		return "Full meal (15% off the three meals)"
	case service.KindSauna:
		return "Sauna"
	case service.KindPool:
		return "Pool"
	case service.KindBathAccessories:
		return "Bath accessories"
	case service.KindLaundry:
		return "Laundry"
	default:
		return kind.String()
	}
}

func (h *Handler) formatMoney(cents int64) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, h.cfg.Hotel.CurrencyLabel)
}

// printError maps engine errors onto user messages. Everything the engine
// reports is recoverable; unexpected errors are logged and summarized.
func (h *Handler) printError(err error) {
	switch {
	case errors.Is(err, errs.ErrRoomNotFound):
		fmt.Fprintln(h.out, "There is no such room.")
	case errors.Is(err, errs.ErrRoomOccupied):
		fmt.Fprintln(h.out, "That room is already occupied.")
	case errors.Is(err, errs.ErrRoomNotOccupied):
		fmt.Fprintln(h.out, "That room is already vacant.")
	case errors.Is(err, errs.ErrNoOccupiedRooms):
		fmt.Fprintln(h.out, "No occupied rooms to release.")
	case errors.Is(err, errs.ErrUnknownService), errors.Is(err, service.ErrUnknownKind):
		fmt.Fprintln(h.out, "Unknown service code.")
	case errors.Is(err, errs.ErrInvalidMenuChoice):
		fmt.Fprintln(h.out, "Invalid choice. Try again.")
	case errors.Is(err, pricing.ErrInvalidDiscount):
		fmt.Fprintln(h.out, "Discount must be between 0 and 100 percent.")
	case errors.Is(err, errs.ErrDomainValidation):
		fmt.Fprintln(h.out, "That input is not valid.")
	default:
		h.logger.Error("console action failed", "error", err)
		fmt.Fprintln(h.out, "Something went wrong. Try again.")
	}
}
