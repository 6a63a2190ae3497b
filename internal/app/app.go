package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/logger"
	"github.com/muqry/hotel-reservation/internal/models"
	"github.com/muqry/hotel-reservation/internal/service"
)

// State is a position in the reservation session. Sessions only move forward.
type State int

const (
	StateStart State = iota
	StateRoomTypeSelected
	StateRoomCountEntered
	StateDatesValidated
	StateServicesSelected
	StateSummaryDisplayed
	StateConfirmed
	StateCancelled
	StateErrorTerminated
)

var stateNames = map[State]string{
	StateStart:            "start",
	StateRoomTypeSelected: "room_type_selected",
	StateRoomCountEntered: "room_count_entered",
	StateDatesValidated:   "dates_validated",
	StateServicesSelected: "services_selected",
	StateSummaryDisplayed: "summary_displayed",
	StateConfirmed:        "confirmed",
	StateCancelled:        "cancelled",
	StateErrorTerminated:  "error_terminated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome describes how a session ended.
type Outcome struct {
	State State
	// Err is the rejection that ended the session in StateErrorTerminated.
	Err error
	// Reservation is set once the summary has been shown.
	Reservation *models.Reservation
}

// Options tunes a session. Zero values use the real clock and uuid ids.
type Options struct {
	// Color renders error lines in red when the output is a terminal.
	Color bool
	Now   func() time.Time
	NewID func() string
}

// App runs one interactive reservation session.
type App struct {
	catalog  *catalog.Catalog
	calc     *service.Calculator
	logger   *logger.Logger
	input    *bufio.Reader
	output   io.Writer
	errColor *color.Color
	now      func() time.Time
	newID    func() string
}

func New(c *catalog.Catalog, log *logger.Logger, input io.Reader, output io.Writer, opts Options) *App {
	if c == nil {
		c = catalog.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	if input == nil {
		input = strings.NewReader("")
	}
	if output == nil {
		output = io.Discard
	}
	errColor := color.New(color.FgRed, color.Bold)
	if !opts.Color {
		errColor.DisableColor()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &App{
		catalog:  c,
		calc:     service.NewCalculator(c),
		logger:   log,
		input:    bufio.NewReader(input),
		output:   output,
		errColor: errColor,
		now:      opts.Now,
		newID:    opts.NewID,
	}
}

type step struct {
	name string
	done State
	run  func(req *models.ReservationRequest) error
}

// Run walks the guest through room type, room count, dates, services and
// confirmation. A rejected answer prints its message and ends the session
// with a nil error; only input failures are returned as errors.
func (a *App) Run() (*Outcome, error) {
	outcome := &Outcome{State: StateStart}
	a.logger.Debug("Session started", logger.Action("session"), logger.Status(outcome.State.String()))

	a.printf("Welcome to %s Reservation System\n", a.catalog.HotelName())
	DisplayRoomTypes(a.output, a.catalog)

	steps := []step{
		{name: "room_type", done: StateRoomTypeSelected, run: a.selectRoomType},
		{name: "room_count", done: StateRoomCountEntered, run: a.enterRoomCount},
		{name: "dates", done: StateDatesValidated, run: a.enterDates},
		{name: "services", done: StateServicesSelected, run: a.selectServices},
	}

	var req models.ReservationRequest
	for _, s := range steps {
		if err := s.run(&req); err != nil {
			return a.fail(outcome, s.name, err)
		}
		outcome.State = s.done
		a.logger.Debug("Step completed", logger.Step(s.name), logger.Status(outcome.State.String()))
	}

	result, err := a.calc.Quote(req)
	if err != nil {
		return a.fail(outcome, "quote", err)
	}

	DisplaySummary(a.output, a.catalog, req, result)
	outcome.State = StateSummaryDisplayed
	outcome.Reservation = &models.Reservation{
		Request:   req,
		Result:    *result,
		CreatedAt: a.now(),
	}

	answer, err := a.prompt(confirmPrompt)
	if err != nil {
		return a.fail(outcome, "confirm", err)
	}
	if service.IsAffirmative(answer) {
		outcome.State = StateConfirmed
		outcome.Reservation.Status = models.StatusConfirmed
		outcome.Reservation.ID = a.newID()
		a.println(confirmedMessage(a.catalog))
	} else {
		outcome.State = StateCancelled
		outcome.Reservation.Status = models.StatusCanceled
		a.println(canceledMessage)
	}

	a.logger.Info("Reservation "+string(outcome.Reservation.Status),
		logger.Action("reserve"),
		logger.Status(outcome.State.String()),
		logger.Reference(outcome.Reservation.ID),
		logger.RoomType(result.RoomType.Name),
		logger.Rooms(req.NumRooms),
		logger.Nights(result.TotalNights),
		logger.Total(result.TotalCost),
		logger.Count(len(req.Services)))
	return outcome, nil
}

func (a *App) selectRoomType(req *models.ReservationRequest) error {
	answer, err := a.prompt(roomPrompt(a.catalog))
	if err != nil {
		return err
	}
	index, err := service.ParseRoomSelection(answer, a.catalog)
	if err != nil {
		return err
	}
	req.RoomTypeIndex = index
	return nil
}

func (a *App) enterRoomCount(req *models.ReservationRequest) error {
	answer, err := a.prompt(roomCountPrompt)
	if err != nil {
		return err
	}
	rooms, err := service.ParseRoomCount(answer)
	if err != nil {
		return err
	}
	req.NumRooms = rooms
	return nil
}

func (a *App) enterDates(req *models.ReservationRequest) error {
	checkIn, err := a.prompt(checkInPrompt)
	if err != nil {
		return err
	}
	checkOut, err := a.prompt(checkOutPrompt)
	if err != nil {
		return err
	}
	req.CheckIn, req.CheckOut, err = service.ParseStayDates(checkIn, checkOut)
	return err
}

func (a *App) selectServices(req *models.ReservationRequest) error {
	answer, err := a.prompt(addServicesPrompt)
	if err != nil {
		return err
	}
	if !service.IsAffirmative(answer) {
		return nil
	}
	DisplayServices(a.output, a.catalog)
	choice, err := a.prompt(selectServicePrompt)
	if err != nil {
		return err
	}
	req.Services, err = service.ParseServiceSelection(choice, a.catalog)
	return err
}

// fail ends the session. Rejections are printed for the guest and swallowed;
// anything else is returned to the caller.
func (a *App) fail(outcome *Outcome, stepName string, err error) (*Outcome, error) {
	if !service.IsRejection(err) {
		a.logger.Error("Session aborted", logger.Step(stepName), logger.Status(outcome.State.String()), logger.Error(err))
		return outcome, err
	}
	a.println(a.errColor.Sprint(service.Message(err)))
	outcome.State = StateErrorTerminated
	outcome.Err = err
	a.logger.Info("Reservation rejected", logger.Step(stepName), logger.Status(outcome.State.String()), logger.Reason(err.Error()))
	return outcome, nil
}

// prompt writes text without a newline and reads one answer line.
func (a *App) prompt(text string) (string, error) {
	a.printf("%s", text)
	line, err := a.input.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", service.ErrInputClosed
		}
	}
	return line, nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.output, format, args...)
}

func (a *App) println(line string) {
	_, _ = fmt.Fprintln(a.output, line)
}
