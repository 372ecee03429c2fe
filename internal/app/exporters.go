package app

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportCSV writes events as CSV with a Date,Title,Location,Note header
func ExportCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Title", "Location", "Note"}); err != nil {
		return err
	}
	for _, ev := range events {
		if err := cw.Write([]string{ev.Date, ev.Title, ev.Location, ev.Note}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportICS writes events as an iCalendar (ICS) file of all-day events
func ExportICS(w io.Writer, calName string, events []Event) error {
	bw := bufio.NewWriter(w)

	// ICS header
	fmt.Fprintln(bw, "BEGIN:VCALENDAR")
	fmt.Fprintln(bw, "VERSION:2.0")
	fmt.Fprintf(bw, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(bw, "X-WR-CALNAME:%s\n", calName)
	fmt.Fprintln(bw, "CALSCALE:GREGORIAN")

	for _, event := range events {
		eventDate, err := time.Parse(DateLayout, event.Date)
		if err != nil {
			continue
		}

		// Event - all-day event. The UID must be stable for proper
		// calendar updates, so it is derived from the event's ID.
		fmt.Fprintln(bw, "BEGIN:VEVENT")
		fmt.Fprintf(bw, "UID:%s@termin-kalender\n", event.ID)
		fmt.Fprintf(bw, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
		fmt.Fprintf(bw, "DTSTART;VALUE=DATE:%s\n", eventDate.Format("20060102"))
		fmt.Fprintf(bw, "DTEND;VALUE=DATE:%s\n", eventDate.AddDate(0, 0, 1).Format("20060102"))
		fmt.Fprintf(bw, "SUMMARY:%s\n", event.Title)
		if event.Location != "" {
			fmt.Fprintf(bw, "LOCATION:%s\n", event.Location)
		}
		if event.Note != "" {
			fmt.Fprintf(bw, "DESCRIPTION:%s\n", event.Note)
		}
		fmt.Fprintln(bw, "END:VEVENT")
	}

	fmt.Fprintln(bw, "END:VCALENDAR")
	return bw.Flush()
}

// ExportJSON writes events as an indented JSON document
func ExportJSON(w io.Writer, events []Event) error {
	data := map[string]interface{}{
		"count":  len(events),
		"events": events,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
