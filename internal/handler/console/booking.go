package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hotel-console/internal/domain/service"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/commands"
)

func (h *Handler) listAvailableRooms(ctx context.Context) {
	rooms, err := h.queries.AvailableRooms(ctx)
	if err != nil {
		h.printError(err)
		return
	}
	if len(rooms) == 0 {
		fmt.Fprintln(h.out, "No rooms available.")
		return
	}
	fmt.Fprintln(h.out, "Available rooms:")
	h.renderRooms(rooms)
}

func (h *Handler) bookRoom(ctx context.Context) {
	h.listAvailableRooms(ctx)

	input, ok := h.promptBookingInput()
	if !ok {
		return
	}

	view, err := h.commands.CreateBooking(ctx, *input)
	if err != nil {
		h.printError(err)
		return
	}
	h.renderBooking(*view)
}

func (h *Handler) bookGroup(ctx context.Context) {
	h.listAvailableRooms(ctx)

	count, ok := h.readInt("Number of rooms to book: ")
	if !ok {
		return
	}
	if count < 1 {
		fmt.Fprintln(h.out, "Please enter a positive number of rooms.")
		return
	}

	chosen := make(map[string]bool, count)
	inputs := make([]commands.BookingInput, 0, count)
	for i := 1; i <= count; i++ {
		number, ok := h.promptGroupRoom(ctx, i, chosen)
		if !ok {
			fmt.Fprintf(h.out, "Skipping booking %d.\n", i)
			continue
		}

		input, ok := h.promptSlotDetails(number)
		if !ok {
			return
		}
		chosen[number] = true
		inputs = append(inputs, *input)
	}

	if len(inputs) == 0 {
		fmt.Fprintln(h.out, "Nothing to book.")
		return
	}

	view, err := h.commands.CreateGroupBooking(ctx, inputs)
	if err != nil {
		h.printError(err)
		return
	}

	fmt.Fprintf(h.out, "Group total: %s\n", h.formatMoney(view.TotalCents))
	for _, b := range view.Bookings {
		h.renderBooking(b)
	}
	for _, number := range view.SkippedRooms {
		fmt.Fprintf(h.out, "Room %s was no longer available and was skipped.\n", number)
	}
}

// promptGroupRoom re-prompts for an available room up to the configured
// attempt bound. Rooms claimed by earlier slots of this group count as
// taken even though they are not checked in yet.
func (h *Handler) promptGroupRoom(ctx context.Context, slot int, chosen map[string]bool) (string, bool) {
	for attempt := 0; attempt < h.cfg.Console.MaxRoomRetries; attempt++ {
		line, ok := h.readLine(fmt.Sprintf("Room number for booking %d: ", slot))
		if !ok {
			return "", false
		}
		number := strings.TrimSpace(line)

		available, err := h.queries.IsRoomAvailable(ctx, number)
		if err != nil {
			h.printError(err)
			return "", false
		}
		if available && !chosen[number] {
			return number, true
		}
		fmt.Fprintf(h.out, "Room %s is not available.\n", number)
	}
	return "", false
}

func (h *Handler) promptBookingInput() (*commands.BookingInput, bool) {
	line, ok := h.readLine("Room number: ")
	if !ok {
		return nil, false
	}
	return h.promptSlotDetails(strings.TrimSpace(line))
}

func (h *Handler) promptSlotDetails(number string) (*commands.BookingInput, bool) {
	nights, ok := h.readInt("Number of nights: ")
	if !ok {
		return nil, false
	}
	if nights < 1 {
		fmt.Fprintln(h.out, "Please enter a positive number of nights.")
		return nil, false
	}

	name, ok := h.readLine("Client name (leave empty for an anonymous guest): ")
	if !ok {
		return nil, false
	}

	codes, ok := h.promptServiceCodes()
	if !ok {
		return nil, false
	}

	return &commands.BookingInput{
		RoomNumber:   number,
		Nights:       nights,
		ClientName:   strings.TrimSpace(name),
		ServiceCodes: codes,
	}, true
}

// promptServiceCodes reads one line of space-separated menu codes; 0 ends
// the selection. Unknown codes are reported and dropped.
func (h *Handler) promptServiceCodes() ([]int, bool) {
	h.renderServiceMenu()
	line, ok := h.readLine("Service codes (space-separated, 0 to finish): ")
	if !ok {
		return nil, false
	}

	var codes []int
	for _, field := range strings.Fields(line) {
		code, err := strconv.Atoi(field)
		if err != nil {
			fmt.Fprintf(h.out, "%q is not a service code.\n", field)
			continue
		}
		if code == 0 {
			break
		}
		if _, err := service.KindFromCode(code); err != nil {
			fmt.Fprintf(h.out, "Unknown service code %d.\n", code)
			continue
		}
		codes = append(codes, code)
	}
	return codes, true
}

func (h *Handler) checkOutGuest(ctx context.Context) {
	rooms, err := h.queries.OccupiedRooms(ctx)
	if err != nil {
		h.printError(err)
		return
	}
	if len(rooms) == 0 {
		h.printError(errs.ErrNoOccupiedRooms)
		return
	}

	fmt.Fprintln(h.out, "Occupied rooms:")
	h.renderRooms(rooms)

	line, ok := h.readLine("Room number to release: ")
	if !ok {
		return
	}
	number := strings.TrimSpace(line)

	if err := h.commands.CheckOut(ctx, number); err != nil {
		h.printError(err)
		return
	}
	fmt.Fprintf(h.out, "Room %s has been released.\n", number)
}
