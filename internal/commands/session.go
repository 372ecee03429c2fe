package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/klabast/wb-services/termin-kalender/internal/app"
)

const menuLine = "____________________________________________________________"

// Session drives the interactive menu loop over an event store.
// Input and output are injected so scripted runs and tests can drive it;
// prompts and banners are only written on interactive terminals.
type Session struct {
	store       *app.Store
	cfg         app.Config
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

// NewSession creates a session over the given store and streams
func NewSession(store *app.Store, cfg app.Config, in io.Reader, out io.Writer, interactive bool) *Session {
	return &Session{
		store:       store,
		cfg:         cfg,
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// Run starts a session on stdin/stdout, detecting whether stdin is a
// terminal so piped input produces clean output
func Run(store *app.Store, cfg app.Config) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	return NewSession(store, cfg, os.Stdin, os.Stdout, interactive).Run()
}

// Run executes the menu loop until quit or end of input
func (s *Session) Run() error {
	for {
		if s.interactive {
			s.banner()
		}

		raw, ok := s.read(fmt.Sprintf("Choose (%d-%d): ", app.MenuMin, app.MenuMax))
		if !ok {
			return nil
		}

		choice, err := app.ReadMenuChoice(raw, app.MenuMin, app.MenuMax)
		if err != nil {
			s.printErr(err)
			continue
		}

		switch choice {
		case 1:
			s.addEvent()
		case 2:
			s.printEvents(s.store.All())
		case 3:
			s.listOnDate()
		case 4:
			s.listInRange()
		case 5:
			s.deleteEvent()
		case 6:
			fmt.Fprintf(s.out, "\nToday's date is: %s\n\n", app.Today())
		case 7:
			s.editEvent()
		case 8:
			s.searchEvents()
		case 9:
			s.export()
		case 10:
			s.weeklyView()
		case 11:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, menuLine)
	fmt.Fprintln(s.out, "------------------- Calendar Event Tracker -----------------")
	fmt.Fprintln(s.out, menuLine)
	fmt.Fprintln(s.out, "1. Add event")
	fmt.Fprintln(s.out, "2. List all events")
	fmt.Fprintln(s.out, "3. List events on a certain date")
	fmt.Fprintln(s.out, "4. List events in a date range")
	fmt.Fprintln(s.out, "5. Delete an event")
	fmt.Fprintln(s.out, "6. Show today's date")
	fmt.Fprintln(s.out, "7. Edit an event (title/location/note)")
	fmt.Fprintln(s.out, "8. Search events by keyword")
	fmt.Fprintln(s.out, "9. Export events (csv/ics/json)")
	fmt.Fprintln(s.out, "10. Weekly view (7-day range)")
	fmt.Fprintln(s.out, "11. Quit")
	fmt.Fprintln(s.out, menuLine)
}

// read prompts (on interactive terminals) and reads one trimmed input line
func (s *Session) read(prompt string) (string, bool) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printErr(err error) {
	fmt.Fprintf(s.out, "%s\n\n", errMessage(err))
}

// errMessage maps the core's error kinds to the messages shown to the user
func errMessage(err error) string {
	switch {
	case errors.Is(err, app.ErrInvalidDate):
		return "Invalid date. Use YYYY-MM-DD format."
	case errors.Is(err, app.ErrEmptyTitle):
		return "Title cannot be empty."
	case errors.Is(err, app.ErrEmptyStore):
		return "No events available."
	case errors.Is(err, app.ErrNotANumber):
		return "Invalid input: not a number."
	case errors.Is(err, app.ErrOutOfRange):
		return "Invalid input: out of range."
	case errors.Is(err, app.ErrInvertedRange):
		return "Start date must be <= end date."
	case errors.Is(err, app.ErrEmptyKeyword):
		return "Keyword cannot be empty."
	}
	return err.Error()
}

// printEvents renders the displayed listing with 1-based indices, the
// same index space Delete and Edit operate on
func (s *Session) printEvents(view []app.Event) {
	if len(view) == 0 {
		fmt.Fprintln(s.out, "\nNo events.")
		fmt.Fprintln(s.out)
		return
	}

	fmt.Fprintln(s.out, "\nIdx | Date       | Title                   | Location           | Note")
	fmt.Fprintln(s.out, strings.Repeat("-", 100))
	for i, ev := range view {
		fmt.Fprintf(s.out, "%3d | %s | %-23s | %-18s | %-40s\n",
			i+1, ev.Date, truncate(ev.Title, 23), truncate(ev.Location, 18), truncate(ev.Note, 40))
	}
	fmt.Fprintln(s.out)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func (s *Session) addEvent() {
	if s.interactive {
		fmt.Fprintln(s.out, "\n--- Add Event ---")
	}

	date, ok := s.read("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	if !app.IsValidDate(date) {
		s.printErr(fmt.Errorf("%w: %q", app.ErrInvalidDate, date))
		return
	}

	title, ok := s.read("Title: ")
	if !ok {
		return
	}
	if title == "" {
		s.printErr(app.ErrEmptyTitle)
		return
	}

	location, ok := s.read("Location (optional): ")
	if !ok {
		return
	}
	note, ok := s.read("Note (optional): ")
	if !ok {
		return
	}

	if _, err := s.store.Add(date, title, location, note); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintln(s.out, "Event added.")
	fmt.Fprintln(s.out)
}

func (s *Session) listOnDate() {
	date, ok := s.read("Show events on (YYYY-MM-DD): ")
	if !ok {
		return
	}

	events, err := s.store.OnDate(date)
	if err != nil {
		s.printErr(err)
		return
	}
	s.printEvents(events)
}

func (s *Session) listInRange() {
	start, ok := s.read("Start date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	end, ok := s.read("End date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	events, err := s.store.InRange(start, end)
	if err != nil {
		s.printErr(err)
		return
	}
	s.printEvents(events)
}

func (s *Session) deleteEvent() {
	if s.store.Len() == 0 {
		s.printErr(app.ErrEmptyStore)
		return
	}
	s.printEvents(s.store.All())

	token, ok := s.read("Enter the index to delete: ")
	if !ok {
		return
	}

	ev, err := s.store.Delete(token)
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintf(s.out, "Event deleted: %s\n\n", ev.Title)
}

func (s *Session) editEvent() {
	if s.store.Len() == 0 {
		s.printErr(app.ErrEmptyStore)
		return
	}
	s.printEvents(s.store.All())

	token, ok := s.read("Enter the index of the event to edit: ")
	if !ok {
		return
	}

	current, err := s.store.Get(token)
	if err != nil {
		s.printErr(err)
		return
	}

	if s.interactive {
		fmt.Fprintln(s.out, "\nLeave a field blank to keep the current value.")
	}
	title, ok := s.read(fmt.Sprintf("New title [%s]: ", current.Title))
	if !ok {
		return
	}
	location, ok := s.read(fmt.Sprintf("New location [%s]: ", current.Location))
	if !ok {
		return
	}
	note, ok := s.read(fmt.Sprintf("New note [%s]: ", current.Note))
	if !ok {
		return
	}

	if _, err := s.store.Edit(token, title, location, note); err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintln(s.out, "Event updated.")
	fmt.Fprintln(s.out)
}

func (s *Session) searchEvents() {
	keyword, ok := s.read("Enter keyword to search in title/note: ")
	if !ok {
		return
	}

	matches, err := s.store.Search(keyword)
	if err != nil {
		s.printErr(err)
		return
	}
	s.printEvents(matches)
}

func (s *Session) export() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "\nNo events to export.")
		fmt.Fprintln(s.out)
		return
	}

	format, ok := s.read("Format (csv/ics/json): ")
	if !ok {
		return
	}

	var write func(io.Writer, []app.Event) error
	switch strings.ToLower(format) {
	case "csv":
		write = app.ExportCSV
	case "ics":
		write = func(w io.Writer, events []app.Event) error {
			return app.ExportICS(w, s.cfg.CalName, events)
		}
	case "json":
		write = app.ExportJSON
	default:
		fmt.Fprintf(s.out, "Unknown format %q (expected csv, ics or json).\n\n", format)
		return
	}

	path, ok := s.read(fmt.Sprintf("Output file [%s]: ", s.cfg.ExportFile))
	if !ok {
		return
	}
	if path == "" {
		path = s.cfg.ExportFile
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, app.FilePermissions)
	if err != nil {
		fmt.Fprintf(s.out, "Cannot open %q: %v\n\n", path, err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(s.out, "Error closing %q: %v\n", path, err)
		}
	}()

	if err := write(file, s.store.All()); err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n\n", err)
		return
	}
	fmt.Fprintf(s.out, "Events exported to %q.\n\n", path)
}

func (s *Session) weeklyView() {
	start, ok := s.read("Enter week start date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	days, err := s.store.Week(start)
	if err != nil {
		s.printErr(err)
		return
	}

	fmt.Fprintf(s.out, "\nWeekly view from %s to %s:\n\n", days[0].Date, days[len(days)-1].Date)
	for _, day := range days {
		fmt.Fprintln(s.out, menuLine)
		fmt.Fprintf(s.out, "%s (%s)\n", day.Date, day.Weekday)
		fmt.Fprintln(s.out, menuLine)

		if len(day.Events) == 0 {
			fmt.Fprintln(s.out, "No events.")
		} else {
			for _, ev := range day.Events {
				location := ev.Location
				if location == "" {
					location = "N/A"
				}
				fmt.Fprintf(s.out, " - %s @ %s\n", ev.Title, location)
				if ev.Note != "" {
					fmt.Fprintf(s.out, "   Note: %s\n", ev.Note)
				}
			}
		}
		fmt.Fprintln(s.out)
	}
}
