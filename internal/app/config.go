package app

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Constants
const (
	DateLayout = "2006-01-02"

	MenuMin = 1
	MenuMax = 11

	DefaultExportFile = "events_export.csv"
	DefaultCalName    = "Termin-Kalender"
	FilePermissions   = 0644

	// ICS constants
	ICSProductID = "-//Winterberg//TerminKalender//DE"
)

// Operation errors returned by the store and input helpers. Callers
// discriminate with errors.Is; the offending value travels in the wrap.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptyStore    = errors.New("no events in store")
	ErrNotANumber    = errors.New("not a number")
	ErrOutOfRange    = errors.New("out of range")
	ErrInvertedRange = errors.New("start date after end date")
	ErrEmptyKeyword  = errors.New("empty keyword")
)

// Config holds the runtime settings read from the environment.
type Config struct {
	ExportFile string
	CalName    string
}

// LoadConfig reads settings from a .env file (if present) and the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := Config{
		ExportFile: DefaultExportFile,
		CalName:    DefaultCalName,
	}
	if v := os.Getenv("TERMIN_EXPORT_FILE"); v != "" {
		cfg.ExportFile = v
	}
	if v := os.Getenv("TERMIN_CAL_NAME"); v != "" {
		cfg.CalName = v
	}
	return cfg
}
