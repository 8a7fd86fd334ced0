package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/commands"
	"hotel-console/internal/usecase/queries"
)

// Handler is the interactive menu shell. It owns parsing and rendering
// only; every decision about rooms, prices and clients happens behind the
// command/query interfaces.
type Handler struct {
	commands commands.BookingCommands
	queries  queries.RoomQueries
	cfg      config.Config
	logger   *slog.Logger
	in       *bufio.Scanner
	out      io.Writer
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	cmds commands.BookingCommands,
	qrs queries.RoomQueries,
	cfg config.Config,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		commands: cmds,
		queries:  qrs,
		cfg:      cfg,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops over the menu until the user quits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rate, err := h.queries.OccupancyRate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.out, "\nCurrent hotel occupancy: %.2f%%\n", rate)
		fmt.Fprint(h.out, menuText)

		line, ok := h.readLine("Your choice: ")
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			h.printError(errs.ErrInvalidMenuChoice)
			continue
		}

		switch choice {
		case menuListRooms:
			h.listAvailableRooms(ctx)
		case menuBookRoom:
			h.bookRoom(ctx)
		case menuGroupBooking:
			h.bookGroup(ctx)
		case menuCheckOut:
			h.checkOutGuest(ctx)
		case menuQuit:
			fmt.Fprintln(h.out, "Goodbye.")
			return nil
		default:
			h.printError(errs.ErrInvalidMenuChoice)
		}
	}
}

const (
	menuQuit         = 0
	menuListRooms    = 1
	menuBookRoom     = 2
	menuGroupBooking = 3
	menuCheckOut     = 4
)

const menuText = `Menu:
 1. List available rooms
 2. Book a room
 3. Group booking
 4. Check out a guest
 0. Exit
`

// readLine prompts and reads one line. The second return is false once
// input is exhausted.
func (h *Handler) readLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

// readInt aborts the current action on malformed input; the engine never
// sees unparsed text.
func (h *Handler) readInt(prompt string) (int, bool) {
	line, ok := h.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(h.out, "Please enter a number.")
		return 0, false
	}
	return n, true
}
