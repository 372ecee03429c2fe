package app

import (
	"sort"
	"strings"
)

// SortEventsByDate sorts events by date in ascending order. The sort is
// stable: events on the same date keep their relative insertion order.
func SortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

// sortEventsByTitle orders a single day's events alphabetically, case-insensitive
func sortEventsByTitle(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
	})
}
