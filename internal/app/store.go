package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds the events of one program run. It is explicitly constructed
// and passed by the caller that drives the session; there is no package
// level event state. Events keep insertion order internally, the sorted
// view returned by All is the index space for Delete, Edit and Get.
type Store struct {
	events []Event
}

// NewStore creates an empty event store
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of stored events
func (s *Store) Len() int {
	return len(s.events)
}

// Add validates date and title and appends a new event. Every event gets
// a UUID at creation; positional indices are resolved to it at the
// presentation boundary.
func (s *Store) Add(date, title, location, note string) (Event, error) {
	date = strings.TrimSpace(date)
	if !IsValidDate(date) {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Event{}, ErrEmptyTitle
	}

	ev := Event{
		ID:       uuid.NewString(),
		Date:     date,
		Title:    title,
		Location: strings.TrimSpace(location),
		Note:     strings.TrimSpace(note),
	}
	s.events = append(s.events, ev)
	return ev, nil
}

// All returns every event sorted ascending by date
func (s *Store) All() []Event {
	view := make([]Event, len(s.events))
	copy(view, s.events)
	SortEventsByDate(view)
	return view
}

// OnDate returns the events on a single date. A valid date with no
// matches yields an empty slice, not an error.
func (s *Store) OnDate(date string) ([]Event, error) {
	date = strings.TrimSpace(date)
	if !IsValidDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	matches := []Event{}
	for _, ev := range s.events {
		if ev.Date == date {
			matches = append(matches, ev)
		}
	}
	return matches, nil
}

// InRange returns the events with start <= date <= end, both ends
// inclusive, sorted ascending. Lexicographic comparison of the bounds is
// chronological because IsValidDate enforces the fixed-width format.
func (s *Store) InRange(start, end string) ([]Event, error) {
	start = strings.TrimSpace(start)
	if !IsValidDate(start) {
		return nil, fmt.Errorf("%w: start %q", ErrInvalidDate, start)
	}
	end = strings.TrimSpace(end)
	if !IsValidDate(end) {
		return nil, fmt.Errorf("%w: end %q", ErrInvalidDate, end)
	}
	if start > end {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvertedRange, start, end)
	}

	matches := []Event{}
	for _, ev := range s.events {
		if start <= ev.Date && ev.Date <= end {
			matches = append(matches, ev)
		}
	}
	SortEventsByDate(matches)
	return matches, nil
}

// Get resolves a 1-based index token against the displayed listing
func (s *Store) Get(token string) (Event, error) {
	if len(s.events) == 0 {
		return Event{}, ErrEmptyStore
	}
	i, err := parseIndex(token, len(s.events))
	if err != nil {
		return Event{}, err
	}
	return s.All()[i-1], nil
}

// Delete removes the event at the given 1-based index of the displayed
// listing and returns it
func (s *Store) Delete(token string) (Event, error) {
	target, err := s.Get(token)
	if err != nil {
		return Event{}, err
	}

	for j, ev := range s.events {
		if ev.ID == target.ID {
			s.events = append(s.events[:j], s.events[j+1:]...)
			break
		}
	}
	return target, nil
}

// Edit updates the event at the given 1-based index of the displayed
// listing. Blank fields keep their current values.
func (s *Store) Edit(token, title, location, note string) (Event, error) {
	target, err := s.Get(token)
	if err != nil {
		return Event{}, err
	}

	for j := range s.events {
		if s.events[j].ID != target.ID {
			continue
		}
		if t := strings.TrimSpace(title); t != "" {
			s.events[j].Title = t
		}
		if l := strings.TrimSpace(location); l != "" {
			s.events[j].Location = l
		}
		if n := strings.TrimSpace(note); n != "" {
			s.events[j].Note = n
		}
		return s.events[j], nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrOutOfRange, token)
}

// Search returns the events whose title or note contains the keyword,
// case-insensitive, sorted ascending by date
func (s *Store) Search(keyword string) ([]Event, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil, ErrEmptyKeyword
	}

	matches := []Event{}
	for _, ev := range s.events {
		if strings.Contains(strings.ToLower(ev.Title), needle) ||
			strings.Contains(strings.ToLower(ev.Note), needle) {
			matches = append(matches, ev)
		}
	}
	SortEventsByDate(matches)
	return matches, nil
}

// Week returns seven consecutive days starting at start, each with its
// events sorted by title
func (s *Store) Week(start string) ([]Day, error) {
	start = strings.TrimSpace(start)
	if !IsValidDate(start) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}

	first, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, start)
	}

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := first.AddDate(0, 0, i)
		day := Day{
			Date:    d.Format(DateLayout),
			Weekday: d.Weekday().String(),
			Events:  []Event{},
		}
		for _, ev := range s.events {
			if ev.Date == day.Date {
				day.Events = append(day.Events, ev)
			}
		}
		sortEventsByTitle(day.Events)
		days = append(days, day)
	}
	return days, nil
}
