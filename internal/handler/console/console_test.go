//go:build unit

package console_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"hotel-console/internal/handler/console"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/commands"
	"hotel-console/internal/usecase/queries"
	commandsmock "hotel-console/tests/mock/commands"
	queriesmock "hotel-console/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsoleHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func (s *ConsoleHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)

	// Every menu cycle shows the occupancy first.
	s.mockQueries.EXPECT().OccupancyRate(gomock.Any()).Return(0.0, nil).AnyTimes()
}

func (s *ConsoleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestConsoleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConsoleHandlerTestSuite))
}

// run feeds a scripted session through the handler and returns what it
// printed.
func (s *ConsoleHandlerTestSuite) run(input string) string {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := console.NewHandler(
		strings.NewReader(input),
		&out,
		s.mockCommands,
		s.mockQueries,
		config.NewTestConfig(),
		logger,
	)
	s.Require().NoError(h.Run(s.T().Context()))
	return out.String()
}

func (s *ConsoleHandlerTestSuite) sampleRooms() []queries.RoomView {
	return []queries.RoomView{
		{Number: "101", Class: "Single Room", RateCents: 100000},
		{Number: "102", Class: "Double Room", RateCents: 150000},
	}
}

func (s *ConsoleHandlerTestSuite) TestQuit() {
	out := s.run("0\n")
	s.Contains(out, "Current hotel occupancy: 0.00%")
	s.Contains(out, "Goodbye.")
}

func (s *ConsoleHandlerTestSuite) TestQuitOnEndOfInput() {
	out := s.run("")
	s.Contains(out, "Your choice: ")
}

func (s *ConsoleHandlerTestSuite) TestInvalidMenuChoice() {
	out := s.run("x\n9\n0\n")
	s.Equal(2, strings.Count(out, "Invalid choice. Try again."))
}

func (s *ConsoleHandlerTestSuite) TestListAvailableRooms() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)

	out := s.run("1\n0\n")
	s.Contains(out, "Available rooms:")
	s.Contains(out, "101")
	s.Contains(out, "1000.00 rub")
}

func (s *ConsoleHandlerTestSuite) TestListAvailableRoomsEmpty() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(nil, nil)

	out := s.run("1\n0\n")
	s.Contains(out, "No rooms available.")
}

func (s *ConsoleHandlerTestSuite) TestBookRoom() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)

	name := "Ann"
	points := 100
	s.mockCommands.EXPECT().
		CreateBooking(gomock.Any(), commands.BookingInput{
			RoomNumber:   "101",
			Nights:       2,
			ClientName:   "Ann",
			ServiceCodes: []int{5},
		}).
		Return(&queries.BookingView{
			RoomNumber:       "101",
			RoomClass:        "Single Room",
			Nights:           2,
			ServiceCostCents: 65000,
			TotalCents:       265000,
			ClientName:       &name,
			ClientPoints:     &points,
		}, nil)

	out := s.run("2\n101\n2\nAnn\n5 0\n0\n")
	s.Contains(out, "Room 101 (Single Room)")
	s.Contains(out, "Total: 2650.00 rub")
	s.Contains(out, "Client: Ann")
	s.Contains(out, "Loyalty points: 100")
}

func (s *ConsoleHandlerTestSuite) TestBookRoomUnknownServiceCode() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)

	s.mockCommands.EXPECT().
		CreateBooking(gomock.Any(), commands.BookingInput{
			RoomNumber:   "101",
			Nights:       1,
			ServiceCodes: []int{5},
		}).
		Return(&queries.BookingView{RoomNumber: "101", Nights: 1, TotalCents: 100000}, nil)

	out := s.run("2\n101\n1\n\n5 99 0\n0\n")
	s.Contains(out, "Unknown service code 99.")
}

func (s *ConsoleHandlerTestSuite) TestBookRoomOccupied() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)

	s.mockCommands.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrRoomOccupied)

	out := s.run("2\n101\n1\n\n0\n0\n")
	s.Contains(out, "That room is already occupied.")
}

func (s *ConsoleHandlerTestSuite) TestBookRoomMalformedNights() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)

	out := s.run("2\n101\nabc\n0\n")
	s.Contains(out, "Please enter a number.")
}

func (s *ConsoleHandlerTestSuite) TestGroupBooking() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)
	s.mockQueries.EXPECT().IsRoomAvailable(gomock.Any(), "101").Return(true, nil)
	s.mockQueries.EXPECT().IsRoomAvailable(gomock.Any(), "102").Return(true, nil)

	s.mockCommands.EXPECT().
		CreateGroupBooking(gomock.Any(), []commands.BookingInput{
			{RoomNumber: "101", Nights: 1},
			{RoomNumber: "102", Nights: 1},
		}).
		Return(&queries.GroupBookingView{
			Bookings: []queries.BookingView{
				{RoomNumber: "101", Nights: 1, TotalCents: 100000},
				{RoomNumber: "102", Nights: 1, TotalCents: 150000},
			},
			TotalCents: 250000,
		}, nil)

	out := s.run("3\n2\n101\n1\n\n0\n102\n1\n\n0\n0\n")
	s.Contains(out, "Group total: 2500.00 rub")
	s.Contains(out, "Room 101")
	s.Contains(out, "Room 102")
}

func (s *ConsoleHandlerTestSuite) TestGroupBookingSlotSkippedAfterRetries() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)
	s.mockQueries.EXPECT().IsRoomAvailable(gomock.Any(), "999").Return(false, nil).Times(3)

	out := s.run("3\n1\n999\n999\n999\n0\n")
	s.Contains(out, "Room 999 is not available.")
	s.Contains(out, "Skipping booking 1.")
	s.Contains(out, "Nothing to book.")
}

func (s *ConsoleHandlerTestSuite) TestGroupBookingRejectsSameRoomTwice() {
	s.mockQueries.EXPECT().AvailableRooms(gomock.Any()).Return(s.sampleRooms(), nil)
	// The second slot asks for 101 again: available in the store but
	// already claimed by the first slot, so the shell re-prompts.
	s.mockQueries.EXPECT().IsRoomAvailable(gomock.Any(), "101").Return(true, nil).Times(2)
	s.mockQueries.EXPECT().IsRoomAvailable(gomock.Any(), "102").Return(true, nil)

	s.mockCommands.EXPECT().
		CreateGroupBooking(gomock.Any(), []commands.BookingInput{
			{RoomNumber: "101", Nights: 1},
			{RoomNumber: "102", Nights: 1},
		}).
		Return(&queries.GroupBookingView{
			Bookings: []queries.BookingView{
				{RoomNumber: "101", Nights: 1, TotalCents: 100000},
				{RoomNumber: "102", Nights: 1, TotalCents: 150000},
			},
			TotalCents: 250000,
		}, nil)

	out := s.run("3\n2\n101\n1\n\n0\n101\n102\n1\n\n0\n0\n")
	s.Contains(out, "Room 101 is not available.")
	s.Contains(out, "Group total: 2500.00 rub")
}

func (s *ConsoleHandlerTestSuite) TestCheckOutNoOccupiedRooms() {
	s.mockQueries.EXPECT().OccupiedRooms(gomock.Any()).Return(nil, nil)

	out := s.run("4\n0\n")
	s.Contains(out, "No occupied rooms to release.")
}

func (s *ConsoleHandlerTestSuite) TestCheckOut() {
	s.mockQueries.EXPECT().OccupiedRooms(gomock.Any()).Return(s.sampleRooms()[:1], nil)
	s.mockCommands.EXPECT().CheckOut(gomock.Any(), "101").Return(nil)

	out := s.run("4\n101\n0\n")
	s.Contains(out, "Occupied rooms:")
	s.Contains(out, "Room 101 has been released.")
}

func (s *ConsoleHandlerTestSuite) TestCheckOutVacantRoom() {
	s.mockQueries.EXPECT().OccupiedRooms(gomock.Any()).Return(s.sampleRooms()[:1], nil)
	s.mockCommands.EXPECT().CheckOut(gomock.Any(), "102").Return(errs.ErrRoomNotOccupied)

	out := s.run("4\n102\n0\n")
	s.Contains(out, "That room is already vacant.")
}
