package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	events := []Event{
		{ID: "id-1", Date: "2025-01-15", Title: "Dentist", Location: "Praxis", Note: "bring card"},
		{ID: "id-2", Date: "2025-01-20", Title: "Lunch, with team", Location: "", Note: ""},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, events); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	body := buf.String()

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV should have header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Title,Location,Note" {
		t.Errorf("CSV header = %q", lines[0])
	}
	if !strings.Contains(body, "2025-01-15,Dentist,Praxis,bring card") {
		t.Error("CSV missing first event row")
	}
	// Fields containing commas must be quoted
	if !strings.Contains(body, `"Lunch, with team"`) {
		t.Errorf("CSV should quote the comma-containing title, got: %s", body)
	}
}

func TestExportICS(t *testing.T) {
	events := []Event{
		{ID: "id-1", Date: "2025-01-15", Title: "Dentist", Location: "Praxis", Note: "bring card"},
		{ID: "id-2", Date: "2025-01-20", Title: "Lunch"},
	}

	var buf bytes.Buffer
	if err := ExportICS(&buf, "Termin-Kalender", events); err != nil {
		t.Fatalf("ExportICS failed: %v", err)
	}
	body := buf.String()

	// Check for required ICS structure
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ICSProductID,
		"X-WR-CALNAME:Termin-Kalender",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing required field: %s", field)
		}
	}

	// Check for all-day event format
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250115") {
		t.Error("Event should be all-day (DTSTART;VALUE=DATE)")
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250116") {
		t.Error("All-day event should end on next day")
	}

	// UID derived from the event ID
	if !strings.Contains(body, "UID:id-1@termin-kalender") {
		t.Error("Missing or incorrect UID format")
	}

	if !strings.Contains(body, "SUMMARY:Dentist") {
		t.Error("Missing event summary for Dentist")
	}
	if !strings.Contains(body, "LOCATION:Praxis") {
		t.Error("Missing event location")
	}
	if !strings.Contains(body, "DESCRIPTION:bring card") {
		t.Error("Missing event description")
	}

	// Events without location or note omit those lines
	if strings.Contains(body, "LOCATION:\n") || strings.Contains(body, "DESCRIPTION:\n") {
		t.Error("Empty LOCATION/DESCRIPTION lines should be omitted")
	}

	// No alarms in exported calendars
	if strings.Contains(body, "BEGIN:VALARM") {
		t.Error("Export should not contain VALARM blocks")
	}

	eventCount := strings.Count(body, "BEGIN:VEVENT")
	if eventCount != 2 {
		t.Errorf("Expected 2 VEVENT blocks, got %d", eventCount)
	}
}

func TestExportICS_EmptyEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportICS(&buf, "Termin-Kalender", []Event{}); err != nil {
		t.Fatalf("ExportICS failed: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("Empty export should still be a valid VCALENDAR")
	}
	if strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("Empty export should contain no VEVENT blocks")
	}
}

func TestExportJSON(t *testing.T) {
	events := []Event{
		{ID: "id-1", Date: "2025-01-15", Title: "Dentist"},
		{ID: "id-2", Date: "2025-01-20", Title: "Lunch"},
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, events); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded struct {
		Count  int     `json:"count"`
		Events []Event `json:"events"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("JSON count = %d, want 2", decoded.Count)
	}
	if len(decoded.Events) != 2 || decoded.Events[0].Title != "Dentist" {
		t.Errorf("JSON events = %+v", decoded.Events)
	}
}
