package app

// Event represents a single calendar event
type Event struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Day represents one day of a weekly view with its events
type Day struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Events  []Event `json:"events"`
}
