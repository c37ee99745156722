package storage

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
)

// DemoUser is the shared demo account. Its log file is the historical
// data/meals.csv and is never provisioned per-user or overwritten at signup.
const DemoUser = "demo"

var logColumns = []string{
	"DateTime", "Date", "MealType", "Meal",
	"Servings", "Calories", "Protein", "Carbs", "Fat",
}

const timestampLayout = "2006-01-02 15:04:05.000000"

// LogStore persists one CSV meal log per user. Every mutation is a full-file
// read-modify-write: there is no locking and no partial append, so two
// overlapping writers for the same user race and the later write wins. That
// is the documented contract, not a bug.
type LogStore struct {
	dataDir string
	logger  *slog.Logger
}

func NewLogStore(dataDir string, logger *slog.Logger) *LogStore {
	return &LogStore{dataDir: dataDir, logger: logger}
}

func (s *LogStore) Path(username string) string {
	if strings.EqualFold(username, DemoUser) {
		return filepath.Join(s.dataDir, "meals.csv")
	}
	return filepath.Join(s.dataDir, username+"_meals.csv")
}

// EnsureLog creates an empty, well-formed log file for the user if one does
// not already exist. An existing file is left untouched.
func (s *LogStore) EnsureLog(username string) error {
	path := s.Path(username)
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return nil
	}
	return s.writeAll(username, nil)
}

// Load reads the user's full log. A missing or empty file is created with
// the expected header and read as an empty log; a file that cannot be
// parsed at all is logged as a warning and also treated as empty rather
// than failing the caller.
func (s *LogStore) Load(username string) ([]models.MealRecord, error) {
	path := s.Path(username)
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		if err := s.writeAll(username, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		s.logger.Warn("meal log unreadable, treating as empty",
			"user", username, "path", path, "error", err)
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Map header positions so files with missing or reordered columns
	// still load; absent fields default instead of failing.
	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	var records []models.MealRecord
	for _, row := range rows[1:] {
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		rec := models.MealRecord{
			Timestamp: parseTimestamp(field("DateTime")),
			Date:      field("Date"),
			MealType:  models.MealType(field("MealType")),
			Name:      field("Meal"),
			Servings:  coerceFloat(field("Servings")),
			Calories:  coerceFloat(field("Calories")),
			Protein:   coerceFloat(field("Protein")),
			Carbs:     coerceFloat(field("Carbs")),
			Fat:       coerceFloat(field("Fat")),
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadDate returns the records of one date partition, in file order.
func (s *LogStore) LoadDate(username, date string) ([]models.MealRecord, error) {
	all, err := s.Load(username)
	if err != nil {
		return nil, err
	}
	var day []models.MealRecord
	for _, rec := range all {
		if rec.Date == date {
			day = append(day, rec)
		}
	}
	return day, nil
}

// Append adds one record and persists the whole log.
func (s *LogStore) Append(username string, rec models.MealRecord) error {
	all, err := s.Load(username)
	if err != nil {
		return err
	}
	return s.writeAll(username, append(all, rec))
}

// ReplaceDate swaps out an entire date partition: every record for the date
// is removed and the supplied list is appended in its place. Edits and
// deletes go through here, addressing records by position within the day.
func (s *LogStore) ReplaceDate(username, date string, records []models.MealRecord) error {
	all, err := s.Load(username)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rec := range all {
		if rec.Date != date {
			kept = append(kept, rec)
		}
	}
	return s.writeAll(username, append(kept, records...))
}

func (s *LogStore) writeAll(username string, records []models.MealRecord) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	path := s.Path(username)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(timestampLayout),
			rec.Date,
			string(rec.MealType),
			rec.Name,
			formatFloat(rec.Servings),
			formatFloat(rec.Calories),
			formatFloat(rec.Protein),
			formatFloat(rec.Carbs),
			formatFloat(rec.Fat),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// coerceFloat turns malformed numeric fields into 0 instead of failing the
// whole load.
func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{timestampLayout, "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
